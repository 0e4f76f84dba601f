// Package store provides an interface for product storage operations.
package store

// DefaultCapacity is the maximum number of products a store holds unless configured otherwise.
const DefaultCapacity = 100

// ProductStore is an interface for product storage operations.
// Products keep their insertion order; ids are unique within a store.
type ProductStore interface {
	// Add appends a new product to the end of the store.
	// Returns ErrCapacityExceeded if the store is full and ErrDuplicateID if the id is taken.
	// Field values are stored as given; validation belongs to the caller.
	Add(id int, name string, price float64, quantity int) (*Product, error)

	// FindIndexByID returns the position of the product with the given id.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindIndexByID(id int) (int, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(id int) (*Product, error)

	// FindAll returns all products in store order.
	// Returns ErrNoProducts if the store is empty.
	FindAll() ([]Product, error)

	// UpdateName replaces the name of a product.
	// Returns ErrProductNotFound or ErrInvalidInput for an empty name.
	UpdateName(id int, name string) (*Product, error)

	// UpdatePrice replaces the price of a product.
	// Returns ErrProductNotFound or ErrInvalidInput for a negative price.
	UpdatePrice(id int, price float64) (*Product, error)

	// UpdateQuantity replaces the quantity of a product.
	// Returns ErrProductNotFound or ErrInvalidInput for a negative quantity.
	UpdateQuantity(id int, quantity int) (*Product, error)

	// DeleteByID removes a product by its ID, shifting later products one position earlier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(id int) error

	// Replace clears the store and appends products in order until capacity is reached.
	Replace(products []Product) int

	// Merge appends products whose ids are not yet present, dropping the rest once
	// capacity is reached. Returns the number of products accepted.
	Merge(products []Product) int

	// Reset removes every product.
	Reset()

	// Len returns the number of products held.
	Len() int

	// Capacity returns the maximum number of products the store accepts.
	Capacity() int
}

// Product represents a product entity in the store.
type Product struct {
	ID       int
	Name     string
	Price    float64
	Quantity int
}
