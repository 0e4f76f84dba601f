// Package handler provides the interactive console for inventory operations.
package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/abgdnv/inventory/internal/product/service"
)

// menu lists the top-level commands in display order.
var menu = []string{
	"[1] Add Product",
	"[2] View Products",
	"[3] Search Product (by ID)",
	"[4] Update Product (by ID)",
	"[5] Delete Product (by ID)",
	"[6] Save to File",
	"[9] Load Demo Products",
	"[0] Exit",
}

// errEndOfInput is returned by prompts once the input stream is exhausted.
var errEndOfInput = errors.New("end of input")

// Console drives the menu loop over a line-oriented input and an output writer.
type Console struct {
	service service.ProductService
	in      io.Reader
	out     io.Writer
	logger  *slog.Logger

	lines <-chan string
}

// NewConsole creates a console reading commands from in and writing to out.
func NewConsole(service service.ProductService, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	return &Console{
		service: service,
		in:      in,
		out:     out,
		logger:  logger.With("component", "console"),
	}
}

// Run loads the persisted inventory and serves commands until the user exits,
// the input ends or ctx is canceled. Every one of those paths saves the inventory
// once before returning. Run returns ctx.Err() when it stopped because of ctx.
func (c *Console) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	c.lines = readLines(c.in, done)

	c.logger.DebugContext(ctx, "Console started")
	c.load(ctx)

	for {
		c.printMenu()
		choice, err := c.readInt(ctx, "Choose: ")
		if err != nil {
			return c.shutdown(ctx, err)
		}

		c.logger.DebugContext(ctx, "Received command", "choice", choice)
		switch choice {
		case 1:
			err = c.addProduct(ctx)
		case 2:
			c.viewProducts(ctx)
		case 3:
			err = c.searchProduct(ctx)
		case 4:
			err = c.updateProduct(ctx)
		case 5:
			err = c.deleteProduct(ctx)
		case 6:
			c.save(ctx)
		case 9:
			c.loadDemoProducts(ctx)
		case 0:
			return c.shutdown(ctx, nil)
		default:
			c.println("Invalid choice.")
		}
		if err != nil {
			return c.shutdown(ctx, err)
		}

		c.println()
	}
}

// shutdown performs the final save. A canceled ctx does not prevent it.
func (c *Console) shutdown(ctx context.Context, cause error) error {
	if cause != nil && !errors.Is(cause, errEndOfInput) {
		c.println()
	}
	c.save(context.WithoutCancel(ctx))
	c.println("Goodbye.")
	c.logger.DebugContext(ctx, "Console stopped", "cause", cause)

	if cause != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

func (c *Console) printMenu() {
	for _, item := range menu {
		c.println(item)
	}
}

func (c *Console) println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// readLines feeds input lines into a channel until the input ends or done is closed.
// Lines may be of any length.
func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		br := bufio.NewReader(in)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}
