package product

import "time"

type Product struct {
	ID            uint
	Name          string
	Price         int64
	DiscountPrice *int64
	Stock         int
	Description   string
	Care          *string
	CategoryID    uint
	Images        []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type FilterInput struct {
	Search     *string
	CategoryID *uint
}

type CreateInput struct {
	Name          string
	Price         int64
	DiscountPrice *int64
	Stock         int
	Description   string
	Care          *string
	CategoryID    uint
	Images        []string
}

type UpdateInput struct {
	Name          *string
	Price         *int64
	DiscountPrice *int64
	Stock         *int
	Description   *string
	Care          *string
	CategoryID    *uint
	Images        []string
}

func (u UpdateInput) HasAnyField() bool {
	return u.Name != nil ||
		u.Price != nil ||
		u.DiscountPrice != nil ||
		u.Stock != nil ||
		u.Description != nil ||
		u.Care != nil ||
		u.CategoryID != nil ||
		u.Images != nil
}
