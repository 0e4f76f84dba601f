package service

import "github.com/abgdnv/inventory/internal/product/store"

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"min=0"`
	Quantity int     `json:"quantity" validate:"min=0"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// demoProducts is the fixed sample catalogue loaded from the menu.
var demoProducts = []store.Product{
	{ID: 101, Name: "Cement (40kg)", Price: 270.00, Quantity: 50},
	{ID: 102, Name: "Steel Bar 10mm", Price: 185.50, Quantity: 120},
	{ID: 103, Name: "Plywood 1/2 inch", Price: 720.00, Quantity: 30},
	{ID: 104, Name: "Paint (White)", Price: 550.00, Quantity: 18},
	{ID: 105, Name: "Nails 2 inch", Price: 45.00, Quantity: 200},
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: product.Quantity,
	}
}
