package store

import (
	"math"

	"github.com/abgdnv/inventory/internal/product/errors"
)

// inMemory implements ProductStore using an ordered slice.
// It is owned by a single console session and is not safe for concurrent use.
type inMemory struct {
	products []Product
	capacity int
}

// NewInMemoryStore creates a new instance of ProductStore holding at most capacity products.
// A non-positive capacity falls back to DefaultCapacity.
func NewInMemoryStore(capacity int) ProductStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &inMemory{
		products: make([]Product, 0, capacity),
		capacity: capacity,
	}
}

// Add appends a new product to the store.
func (s *inMemory) Add(id int, name string, price float64, quantity int) (*Product, error) {
	if len(s.products) >= s.capacity {
		return nil, errors.ErrCapacityExceeded
	}
	if _, err := s.FindIndexByID(id); err == nil {
		return nil, errors.ErrDuplicateID
	}

	product := Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
	s.products = append(s.products, product)

	return &product, nil
}

// FindIndexByID scans the store from the start for the given id.
func (s *inMemory) FindIndexByID(id int) (int, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return i, nil
		}
	}
	return -1, errors.ErrProductNotFound
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(id int) (*Product, error) {
	idx, err := s.FindIndexByID(id)
	if err != nil {
		return nil, err
	}
	t := s.products[idx]
	return &t, nil
}

// FindAll retrieves all products in insertion order.
func (s *inMemory) FindAll() ([]Product, error) {
	if len(s.products) == 0 {
		return nil, errors.ErrNoProducts
	}
	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list, nil
}

// UpdateName replaces the name of the product with the given id.
func (s *inMemory) UpdateName(id int, name string) (*Product, error) {
	idx, err := s.FindIndexByID(id)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.ErrInvalidInput
	}
	s.products[idx].Name = name
	t := s.products[idx]
	return &t, nil
}

// UpdatePrice replaces the price of the product with the given id.
func (s *inMemory) UpdatePrice(id int, price float64) (*Product, error) {
	idx, err := s.FindIndexByID(id)
	if err != nil {
		return nil, err
	}
	if price < 0 || math.IsNaN(price) {
		return nil, errors.ErrInvalidInput
	}
	s.products[idx].Price = price
	t := s.products[idx]
	return &t, nil
}

// UpdateQuantity replaces the quantity of the product with the given id.
func (s *inMemory) UpdateQuantity(id int, quantity int) (*Product, error) {
	idx, err := s.FindIndexByID(id)
	if err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, errors.ErrInvalidInput
	}
	s.products[idx].Quantity = quantity
	t := s.products[idx]
	return &t, nil
}

// DeleteByID deletes a product by its ID.
func (s *inMemory) DeleteByID(id int) error {
	idx, err := s.FindIndexByID(id)
	if err != nil {
		return err
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	return nil
}

// Replace clears the store and fills it with products.
func (s *inMemory) Replace(products []Product) int {
	s.Reset()
	return s.Merge(products)
}

// Merge appends the products that are not yet present.
// Duplicates are skipped; once the store is full the remaining products are ignored.
func (s *inMemory) Merge(products []Product) int {
	accepted := 0
	for _, p := range products {
		if len(s.products) >= s.capacity {
			continue
		}
		if _, err := s.FindIndexByID(p.ID); err == nil {
			continue
		}
		s.products = append(s.products, p)
		accepted++
	}
	return accepted
}

// Reset removes every product.
func (s *inMemory) Reset() {
	s.products = s.products[:0]
}

// Len returns the number of products in the store.
func (s *inMemory) Len() int {
	return len(s.products)
}

// Capacity returns the maximum number of products.
func (s *inMemory) Capacity() int {
	return s.capacity
}
