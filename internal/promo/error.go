package promo

import "errors"

var (
	ErrPromoNotFound   = errors.New("promo code not found or not active")
	ErrInvalidDiscount = errors.New("discount percent must be between 1 and 100")
	ErrCodeRequired    = errors.New("promo code is required")
)
