package api

import (
	"net/http"

	"dhatucraft-be/internal/logger"
	appmw "dhatucraft-be/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the full route table. The frontend origin is the only one
// allowed to send credentialed requests.
func NewRouter(h *Handler, frontendOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(corsMiddleware(frontendOrigin))
	r.Use(appmw.AuthMiddleware)
	r.Use(appmw.RateLimitMiddleware)

	r.Get("/healthz", h.Healthz)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Post("/forgot-password", h.ForgotPassword)
			r.Post("/reset-password", h.ResetPassword)
		})

		// Public catalog.
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Get("/categories", h.ListCategories)

		r.Post("/promos/validate", h.ValidatePromo)
		r.Get("/payment/instructions", h.PaymentInstructions)

		// Customer routes.
		r.Group(func(r chi.Router) {
			r.Use(RequireAuth)
			r.Post("/orders", h.PlaceOrder)
			r.Get("/orders/{id}", h.ListUserOrders)
			r.Patch("/orders/{id}/cancel", h.CancelOrder)
		})

		// Admin routes.
		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireAdmin)

			r.Post("/products", h.AdminCreateProduct)
			r.Put("/products/{id}", h.AdminUpdateProduct)
			r.Delete("/products/{id}", h.AdminDeleteProduct)

			r.Post("/categories", h.AdminCreateCategory)
			r.Put("/categories/{id}", h.AdminUpdateCategory)
			r.Delete("/categories/{id}", h.AdminDeleteCategory)

			r.Get("/promos", h.AdminListPromos)
			r.Post("/promos", h.AdminCreatePromo)
			r.Put("/promos/{id}", h.AdminUpdatePromo)
			r.Delete("/promos/{id}", h.AdminDeletePromo)

			r.Get("/orders", h.AdminListOrders)
			r.Get("/orders/{id}", h.GetOrder)
			r.Put("/orders/{id}", h.AdminUpdateOrderStatus)

			r.Post("/uploads", h.AdminUploadImage)

			r.Get("/metrics", h.MetricsSnapshot)
		})
	})

	return r
}

func corsMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
