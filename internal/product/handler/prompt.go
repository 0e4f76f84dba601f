package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/abgdnv/inventory/internal/product/codec"
)

// readLine prints prompt and waits for the next trimmed input line.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	c.printf("%s", prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			c.println()
			return "", errEndOfInput
		}
		return strings.TrimSpace(line), nil
	}
}

// readInt prompts until the input parses as a 32-bit integer.
func (c *Console) readInt(ctx context.Context, prompt string) (int, error) {
	for {
		raw, err := c.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(raw, 10, 32)
		if err == nil {
			return int(n), nil
		}
		c.println("Invalid number. Try again.")
	}
}

// readFloat prompts until the input parses as a floating-point number.
func (c *Console) readFloat(ctx context.Context, prompt string) (float64, error) {
	for {
		raw, err := c.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		f, err := codec.ParsePrice(raw)
		if err == nil {
			return f, nil
		}
		c.println("Invalid number. Try again.")
	}
}

// readName prompts until a non-empty name is entered.
func (c *Console) readName(ctx context.Context, prompt string) (string, error) {
	for {
		name, err := c.readLine(ctx, prompt)
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
		c.println("Error: Name cannot be empty.")
	}
}
