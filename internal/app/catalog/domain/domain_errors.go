package domain

import "errors"

// Validation errors raised when saving a product. A product that cannot be
// found is not an error in this domain: questions about unknown products
// answer with guidance text instead.
var (
	// ErrEmptyProductName indicates an attempt to save a product with an empty name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrProductNameTooLong indicates the product name exceeds maximum length.
	ErrProductNameTooLong = errors.New("product name exceeds maximum length of 255 characters")

	// ErrInvalidPrice indicates a price that is not a well-formed decimal number.
	ErrInvalidPrice = errors.New("price must be a well-formed number")

	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")
)
