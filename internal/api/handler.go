package api

import (
	"dhatucraft-be/internal/category"
	"dhatucraft-be/internal/media"
	"dhatucraft-be/internal/metrics"
	"dhatucraft-be/internal/order"
	"dhatucraft-be/internal/product"
	"dhatucraft-be/internal/promo"
	"dhatucraft-be/internal/user"
)

// Handler carries the service layer into HTTP land. One instance serves
// every route; per-request state lives on the context.
type Handler struct {
	Users      user.Service
	Products   product.Service
	Categories category.Service
	Promos     promo.Service
	Orders     order.Service
	Uploader   *media.Client
	Metrics    *metrics.Registry
	AppEnv     string
}

func NewHandler(
	users user.Service,
	products product.Service,
	categories category.Service,
	promos promo.Service,
	orders order.Service,
	uploader *media.Client,
	reg *metrics.Registry,
	appEnv string,
) *Handler {
	return &Handler{
		Users:      users,
		Products:   products,
		Categories: categories,
		Promos:     promos,
		Orders:     orders,
		Uploader:   uploader,
		Metrics:    reg,
		AppEnv:     appEnv,
	}
}
