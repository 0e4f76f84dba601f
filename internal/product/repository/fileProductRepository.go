// Package repository stores product snapshots outside the process.
package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/abgdnv/inventory/internal/product/codec"
	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/abgdnv/inventory/internal/product/store"
)

// FileProductRepository keeps products in a single delimited text file.
// Every save rewrites the whole file in place; there is no temp file or rename.
type FileProductRepository struct {
	path string
}

// NewFileProductRepository creates a repository backed by the file at path.
func NewFileProductRepository(path string) *FileProductRepository {
	return &FileProductRepository{path: path}
}

// Path returns the backing file path.
func (r *FileProductRepository) Path() string {
	return r.path
}

// Save truncates the file and writes products to it.
func (r *FileProductRepository) Save(_ context.Context, products []store.Product) (err error) {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("%w: %w", perrors.ErrPersistence, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", perrors.ErrPersistence, cerr)
		}
	}()

	if err := codec.Write(f, products); err != nil {
		return fmt.Errorf("%w: write %s: %w", perrors.ErrPersistence, r.path, err)
	}
	return nil
}

// Load reads and parses the file.
func (r *FileProductRepository) Load(_ context.Context) ([]store.Product, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", perrors.ErrPersistence, err)
	}
	defer f.Close()

	products, err := codec.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", perrors.ErrPersistence, r.path, err)
	}
	return products, nil
}
