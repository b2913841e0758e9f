package promo

import "time"

type Promo struct {
	ID              uint
	Code            string
	DiscountPercent int
	Active          bool
	StartsAt        time.Time
	ExpiresAt       time.Time
	CreatedAt       time.Time
}

type CreateInput struct {
	Code            string
	DiscountPercent int
	Active          bool
	StartsAt        time.Time
	ExpiresAt       time.Time
}

type UpdateInput struct {
	DiscountPercent *int
	Active          *bool
	StartsAt        *time.Time
	ExpiresAt       *time.Time
}
