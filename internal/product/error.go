package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoUpdateFields  = errors.New("no fields to update")
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrInvalidStock    = errors.New("stock must not be negative")
)
