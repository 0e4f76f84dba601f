package repository

import (
	"context"

	"github.com/abgdnv/inventory/internal/product/store"
)

// ProductRepository persists a snapshot of the store and reads it back.
type ProductRepository interface {
	// Save overwrites the persisted snapshot with products.
	// Returns an error wrapping ErrPersistence if the snapshot cannot be written.
	Save(ctx context.Context, products []store.Product) error

	// Load reads the persisted snapshot.
	// Returns an error matching fs.ErrNotExist if nothing was saved yet,
	// and an error wrapping ErrPersistence for any other failure.
	Load(ctx context.Context) ([]store.Product, error)

	// Path describes where the snapshot lives.
	Path() string
}
