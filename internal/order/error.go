package order

import "errors"

var (
	// -- Validation & Input --
	ErrMissingUserID   = errors.New("user id is required")
	ErrEmptyCart       = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("line item quantity must be at least 1")
	ErrInvalidTotal    = errors.New("total amount must not be negative")

	// -- Resource State --
	ErrOrderNotFound      = errors.New("order not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrCancelWindowClosed = errors.New("cancellation window has closed")
	ErrUnauthorized       = errors.New("unauthorized")

	// -- Operation Failures --
	ErrPlaceOrderFailed = errors.New("order could not be placed")
)
