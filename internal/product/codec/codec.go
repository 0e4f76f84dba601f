// Package codec reads and writes the comma-delimited inventory file format.
//
// The first line of a file is a header and is never validated. Each following
// line holds one product as id,name,price,qty. Names are not quoted: a comma in
// a name is replaced with a space when written.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abgdnv/inventory/internal/product/store"
)

const (
	// Header is the first line of every written file.
	Header = "id,name,price,qty"
	// Delimiter separates the fields of a line.
	Delimiter = ","

	fieldCount = 4
)

// ErrMalformedRecord is returned when a numeric field of a well-shaped line cannot be parsed.
// It aborts the whole parse.
var ErrMalformedRecord = errors.New("malformed record")

// Write serializes products in order, preceded by the header line.
// Prices are written in their shortest form, not rounded.
func Write(w io.Writer, products []store.Product) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return err
	}
	for _, p := range products {
		line := strings.Join([]string{
			strconv.Itoa(p.ID),
			strings.ReplaceAll(p.Name, Delimiter, " "),
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.Itoa(p.Quantity),
		}, Delimiter)
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Parse reads products from r. Lines that do not hold exactly four fields are
// skipped; a bad number anywhere returns ErrMalformedRecord and no products.
// Lines may be of any length.
func Parse(r io.Reader) ([]store.Product, error) {
	br := bufio.NewReader(r)
	var products []store.Product
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if raw != "" {
			lineNo++
			if lineNo > 1 {
				product, ok, err := parseLine(raw)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRecord, lineNo, err)
				}
				if ok {
					products = append(products, product)
				}
			}
		}
		if readErr == io.EOF {
			return products, nil
		}
		if readErr != nil {
			return nil, readErr
		}
	}
}

// ParsePrice parses a price. Values too large for a float64 become ±Inf
// instead of failing.
func ParsePrice(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

// FormatPrice renders a price the way the console displays it.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

// splitFields splits a line on the delimiter and drops trailing empty fields,
// so "1,a,2,3," still counts as four fields.
func splitFields(line string) []string {
	fields := strings.Split(line, Delimiter)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// parseLine reports ok=false for blank lines and lines with the wrong field count.
func parseLine(raw string) (store.Product, bool, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return store.Product{}, false, nil
	}
	fields := splitFields(line)
	if len(fields) != fieldCount {
		return store.Product{}, false, nil
	}
	product, err := parseFields(fields)
	if err != nil {
		return store.Product{}, false, err
	}
	return product, true, nil
}

func parseFields(fields []string) (store.Product, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 32)
	if err != nil {
		return store.Product{}, fmt.Errorf("id: %w", err)
	}
	price, err := ParsePrice(strings.TrimSpace(fields[2]))
	if err != nil {
		return store.Product{}, fmt.Errorf("price: %w", err)
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 32)
	if err != nil {
		return store.Product{}, fmt.Errorf("qty: %w", err)
	}
	return store.Product{
		ID:       int(id),
		Name:     strings.TrimSpace(fields[1]),
		Price:    price,
		Quantity: int(quantity),
	}, nil
}
