// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"

	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/abgdnv/inventory/internal/product/repository"
	"github.com/abgdnv/inventory/internal/product/store"
	"github.com/go-playground/validator/v10"
)

// Service implements ProductService on top of a ProductStore and a ProductRepository.
type Service struct {
	store      store.ProductStore
	repository repository.ProductRepository
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewService creates a new instance of ProductService.
func NewService(s store.ProductStore, repo repository.ProductRepository, logger *slog.Logger) *Service {
	return &Service{
		store:      s,
		repository: repo,
		validate:   validator.New(),
		logger:     logger.With("component", "service"),
	}
}

// Create validates the product and adds it to the store.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	if math.IsNaN(product.Price) {
		return nil, fmt.Errorf("%w: price is not a number", perrors.ErrInvalidInput)
	}
	if err := s.validate.Struct(product); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			rules := make(map[string]string, len(validationErrors))
			for _, fieldErr := range validationErrors {
				rules[fieldErr.Field()] = fieldErr.Tag()
			}
			s.logger.WarnContext(ctx, "Validation errors occurred", "ID", product.ID, "errors", rules)
		}
		return nil, fmt.Errorf("%w: %w", perrors.ErrInvalidInput, err)
	}

	p, err := s.store.Add(product.ID, product.Name, product.Price, product.Quantity)
	if err != nil {
		s.logger.WarnContext(ctx, "Product not created", "ID", product.ID, "error", err)
		return nil, fmt.Errorf("failed to create product with ID %d: %w", product.ID, err)
	}
	s.logger.InfoContext(ctx, "Product created", "ID", p.ID, "Name", p.Name)
	return toDto(p), nil
}

// Exists reports whether a product with the id is in the store.
func (s *Service) Exists(_ context.Context, id int) bool {
	_, err := s.store.FindIndexByID(id)
	return err == nil
}

// IsFull reports whether another product can be added.
func (s *Service) IsFull(_ context.Context) bool {
	return s.store.Len() >= s.store.Capacity()
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id int) (*ProductDto, error) {
	product, err := s.store.FindByID(id)
	if err != nil {
		s.logger.DebugContext(ctx, "Product lookup failed", "ID", id, "error", err)
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	return toDto(product), nil
}

// FindAll retrieves all products and returns them as ProductDTOs.
func (s *Service) FindAll(_ context.Context) ([]ProductDto, error) {
	products, err := s.store.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))
	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}
	return productDTOs, nil
}

// UpdateName changes the name of the product with the given id.
func (s *Service) UpdateName(ctx context.Context, id int, name string) (*ProductDto, error) {
	updated, err := s.store.UpdateName(id, name)
	if err != nil {
		return nil, fmt.Errorf("failed to update name of product with ID %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "Product name updated", "ID", id, "Name", name)
	return toDto(updated), nil
}

// UpdatePrice changes the price of the product with the given id.
func (s *Service) UpdatePrice(ctx context.Context, id int, price float64) (*ProductDto, error) {
	updated, err := s.store.UpdatePrice(id, price)
	if err != nil {
		return nil, fmt.Errorf("failed to update price of product with ID %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "Product price updated", "ID", id, "Price", price)
	return toDto(updated), nil
}

// UpdateQuantity changes the quantity of the product with the given id.
func (s *Service) UpdateQuantity(ctx context.Context, id int, quantity int) (*ProductDto, error) {
	updated, err := s.store.UpdateQuantity(id, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to update quantity of product with ID %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "Product quantity updated", "ID", id, "Quantity", quantity)
	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
func (s *Service) DeleteByID(ctx context.Context, id int) error {
	if err := s.store.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "Product deleted", "ID", id)
	return nil
}

// LoadDemo overwrites the store with the demo catalogue.
func (s *Service) LoadDemo(ctx context.Context) int {
	n := s.store.Replace(demoProducts)
	s.logger.InfoContext(ctx, "Demo products loaded", "count", n)
	return n
}

// Load merges the persisted snapshot into the store.
func (s *Service) Load(ctx context.Context) (int, error) {
	products, err := s.repository.Load(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.DebugContext(ctx, "No inventory file to load", "path", s.repository.Path())
			return 0, err
		}
		s.store.Reset()
		s.logger.WarnContext(ctx, "Inventory file could not be loaded, starting empty", "path", s.repository.Path(), "error", err)
		return 0, fmt.Errorf("failed to load products: %w", err)
	}

	accepted := s.store.Merge(products)
	s.logger.InfoContext(ctx, "Inventory loaded", "path", s.repository.Path(), "read", len(products), "accepted", accepted)
	return s.store.Len(), nil
}

// Save writes every product in the store to the repository.
func (s *Service) Save(ctx context.Context) error {
	products, err := s.store.FindAll()
	if err != nil && !errors.Is(err, perrors.ErrNoProducts) {
		return fmt.Errorf("failed to snapshot products: %w", err)
	}
	if err := s.repository.Save(ctx, products); err != nil {
		s.logger.ErrorContext(ctx, "Inventory not saved", "path", s.repository.Path(), "error", err)
		return fmt.Errorf("failed to save products: %w", err)
	}
	s.logger.InfoContext(ctx, "Inventory saved", "path", s.repository.Path(), "count", len(products))
	return nil
}

// StoragePath returns the repository location.
func (s *Service) StoragePath() string {
	return s.repository.Path()
}
