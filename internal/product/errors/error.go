// Package errors provides custom error types for product-related operations.
package errors

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateID = errors.New("product ID already exists")
var ErrCapacityExceeded = errors.New("inventory is full")
var ErrInvalidInput = errors.New("invalid input")
var ErrPersistence = errors.New("persistence failure")

// ErrNoProducts is returned by listings of an empty store.
var ErrNoProducts = errors.New("no products found")
