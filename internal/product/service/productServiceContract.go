package service

import "context"

// ProductService defines the methods for managing the inventory.
// It sits between the console and the store: it validates input, owns
// persistence and logs what happens.
type ProductService interface {
	// Create validates and adds a new product.
	// Returns ErrInvalidInput, ErrDuplicateID or ErrCapacityExceeded.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Exists reports whether a product with the id is present.
	Exists(ctx context.Context, id int) bool

	// IsFull reports whether the store has reached its capacity.
	IsFull(ctx context.Context) bool

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int) (*ProductDto, error)

	// FindAll returns all products in store order.
	// Returns ErrNoProducts if the store is empty.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// UpdateName changes the name of a product.
	UpdateName(ctx context.Context, id int, name string) (*ProductDto, error)

	// UpdatePrice changes the price of a product.
	UpdatePrice(ctx context.Context, id int, price float64) (*ProductDto, error)

	// UpdateQuantity changes the quantity of a product.
	UpdateQuantity(ctx context.Context, id int, quantity int) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int) error

	// LoadDemo replaces the inventory with the demo catalogue and returns its size.
	LoadDemo(ctx context.Context) int

	// Load merges the persisted snapshot into the store and returns the store size.
	// A missing snapshot returns an error matching fs.ErrNotExist and leaves the store alone;
	// any other failure empties the store and returns an error wrapping ErrPersistence.
	Load(ctx context.Context) (int, error)

	// Save writes the whole store to the persisted snapshot.
	Save(ctx context.Context) error

	// StoragePath describes where Save writes to.
	StoragePath() string
}
