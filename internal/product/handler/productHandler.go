package handler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/abgdnv/inventory/internal/product/codec"
	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/abgdnv/inventory/internal/product/service"
)

func (c *Console) addProduct(ctx context.Context) error {
	if c.service.IsFull(ctx) {
		c.println("Inventory is full.")
		return nil
	}

	id, err := c.readInt(ctx, "ID: ")
	if err != nil {
		return err
	}
	if c.service.Exists(ctx, id) {
		c.println("Error: ID already exists. Try another ID.")
		return nil
	}

	name, err := c.readName(ctx, "Name: ")
	if err != nil {
		return err
	}
	price, err := c.readFloat(ctx, "Price: ")
	if err != nil {
		return err
	}
	quantity, err := c.readInt(ctx, "Quantity: ")
	if err != nil {
		return err
	}

	_, err = c.service.Create(ctx, service.ProductCreateDto{ID: id, Name: name, Price: price, Quantity: quantity})
	switch {
	case err == nil:
		c.println("Added successfully.")
	case errors.Is(err, perrors.ErrInvalidInput):
		c.println("Error: Price and quantity must be non-negative.")
	case errors.Is(err, perrors.ErrDuplicateID):
		c.println("Error: ID already exists. Try another ID.")
	case errors.Is(err, perrors.ErrCapacityExceeded):
		c.println("Inventory is full.")
	default:
		c.println("Error:", err)
	}
	return nil
}

func (c *Console) viewProducts(ctx context.Context) {
	list, err := c.service.FindAll(ctx)
	if err != nil {
		if !errors.Is(err, perrors.ErrNoProducts) {
			c.logger.ErrorContext(ctx, "Error retrieving product list", "error", err)
		}
		c.println("No products found.")
		return
	}

	c.println("ID | Name | Price | Qty")
	c.println("------------------------")
	for _, p := range list {
		c.println(formatProduct(&p))
	}
}

func (c *Console) searchProduct(ctx context.Context) error {
	id, err := c.readInt(ctx, "Enter ID to search: ")
	if err != nil {
		return err
	}

	found, err := c.service.FindByID(ctx, id)
	if err != nil {
		c.reportLookup(err)
		return nil
	}
	c.println("FOUND: " + formatProduct(found))
	return nil
}

func (c *Console) updateProduct(ctx context.Context) error {
	id, err := c.readInt(ctx, "Enter ID to update: ")
	if err != nil {
		return err
	}

	current, err := c.service.FindByID(ctx, id)
	if err != nil {
		c.reportLookup(err)
		return nil
	}
	c.println("Current: " + formatProduct(current))

	c.println("[1] Update Name")
	c.println("[2] Update Price")
	c.println("[3] Update Quantity")
	choice, err := c.readInt(ctx, "Choose: ")
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		name, err := c.readName(ctx, "New name: ")
		if err != nil {
			return err
		}
		_, err = c.service.UpdateName(ctx, id, name)
		c.reportUpdate(err, "Error: Name cannot be empty.")
	case 2:
		price, err := c.readFloat(ctx, "New price: ")
		if err != nil {
			return err
		}
		_, err = c.service.UpdatePrice(ctx, id, price)
		c.reportUpdate(err, "Error: Price must be non-negative.")
	case 3:
		quantity, err := c.readInt(ctx, "New quantity: ")
		if err != nil {
			return err
		}
		_, err = c.service.UpdateQuantity(ctx, id, quantity)
		c.reportUpdate(err, "Error: Quantity must be non-negative.")
	default:
		c.println("Invalid choice.")
	}
	return nil
}

func (c *Console) deleteProduct(ctx context.Context) error {
	id, err := c.readInt(ctx, "Enter ID to delete: ")
	if err != nil {
		return err
	}

	if err := c.service.DeleteByID(ctx, id); err != nil {
		c.reportLookup(err)
		return nil
	}
	c.println("Deleted.")
	return nil
}

func (c *Console) save(ctx context.Context) {
	if err := c.service.Save(ctx); err != nil {
		c.println("Error saving file:", err)
		return
	}
	c.println("Saved to " + c.service.StoragePath())
}

func (c *Console) load(ctx context.Context) {
	n, err := c.service.Load(ctx)
	switch {
	case err == nil:
		c.printf("Loaded %d item(s) from file.\n", n)
	case errors.Is(err, fs.ErrNotExist):
	default:
		c.println("Warning: could not load file properly. Starting empty.")
	}
}

func (c *Console) loadDemoProducts(ctx context.Context) {
	n := c.service.LoadDemo(ctx)
	c.printf("Demo products loaded (%d items).\n", n)
}

func (c *Console) reportLookup(err error) {
	if errors.Is(err, perrors.ErrProductNotFound) {
		c.println("Error: Product not found.")
		return
	}
	c.println("Error:", err)
}

func (c *Console) reportUpdate(err error, invalidMsg string) {
	switch {
	case err == nil:
		c.println("Updated.")
	case errors.Is(err, perrors.ErrInvalidInput):
		c.println(invalidMsg)
	default:
		c.reportLookup(err)
	}
}

// formatProduct renders a product as "id | name | price | qty" with a two-decimal price.
func formatProduct(p *service.ProductDto) string {
	return fmt.Sprintf("%d | %s | %s | %d", p.ID, p.Name, codec.FormatPrice(p.Price), p.Quantity)
}
