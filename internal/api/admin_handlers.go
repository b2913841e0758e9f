package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dhatucraft-be/internal/category"
	"dhatucraft-be/internal/order"
	"dhatucraft-be/internal/product"
	"dhatucraft-be/internal/promo"
	"dhatucraft-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

// ---------- products ----------

func (h *Handler) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req upsertProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == nil || req.Price == nil || req.CategoryID == nil {
		writeError(w, http.StatusBadRequest, "name, price and categoryId are required")
		return
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}

	p, err := h.Products.Create(r.Context(), product.CreateInput{
		Name:          *req.Name,
		Price:         *req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         stock,
		Description:   utils.PtrString(req.Description),
		Care:          req.Care,
		CategoryID:    *req.CategoryID,
		Images:        req.Images,
	})
	if err != nil {
		if errors.Is(err, product.ErrInvalidPrice) || errors.Is(err, product.ErrInvalidStock) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	writeJSON(w, http.StatusCreated, mapProduct(p))
}

func (h *Handler) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req upsertProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Products.Update(r.Context(), id, product.UpdateInput{
		Name:          req.Name,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		Description:   req.Description,
		Care:          req.Care,
		CategoryID:    req.CategoryID,
		Images:        req.Images,
	})
	if err != nil {
		switch {
		case errors.Is(err, product.ErrProductNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, product.ErrNoUpdateFields),
			errors.Is(err, product.ErrInvalidPrice),
			errors.Is(err, product.ErrInvalidStock):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update product")
		}
		return
	}

	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (h *Handler) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.Products.Delete(r.Context(), id); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	writeMessage(w, http.StatusOK, "product deleted")
}

// ---------- categories ----------

func (h *Handler) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req upsertCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Categories.Create(r.Context(), req.Name, req.Image)
	if err != nil {
		if errors.Is(err, category.ErrNameRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	writeJSON(w, http.StatusCreated, mapCategory(c))
}

func (h *Handler) AdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req upsertCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Categories.Update(r.Context(), id, req.Name, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, category.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, category.ErrNameRequired):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update category")
		}
		return
	}

	writeJSON(w, http.StatusOK, mapCategory(c))
}

func (h *Handler) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.Categories.Delete(r.Context(), id); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}

	writeMessage(w, http.StatusOK, "category deleted")
}

// ---------- promos ----------

func (h *Handler) AdminListPromos(w http.ResponseWriter, r *http.Request) {
	promos, err := h.Promos.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list promos")
		return
	}

	out := make([]promoResponse, len(promos))
	for i, p := range promos {
		out[i] = mapPromo(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) AdminCreatePromo(w http.ResponseWriter, r *http.Request) {
	var req upsertPromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.DiscountPercent == nil || req.ExpiresAt == nil {
		writeError(w, http.StatusBadRequest, "discountPercent and expiresAt are required")
		return
	}

	startsAt := time.Now()
	if req.StartsAt != nil {
		startsAt = *req.StartsAt
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	p, err := h.Promos.Create(r.Context(), promo.CreateInput{
		Code:            req.Code,
		DiscountPercent: *req.DiscountPercent,
		Active:          active,
		StartsAt:        startsAt,
		ExpiresAt:       *req.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, promo.ErrCodeRequired) || errors.Is(err, promo.ErrInvalidDiscount) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create promo")
		return
	}

	writeJSON(w, http.StatusCreated, mapPromo(p))
}

func (h *Handler) AdminUpdatePromo(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid promo id")
		return
	}

	var req upsertPromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Promos.Update(r.Context(), id, promo.UpdateInput{
		DiscountPercent: req.DiscountPercent,
		Active:          req.Active,
		StartsAt:        req.StartsAt,
		ExpiresAt:       req.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, promo.ErrPromoNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, promo.ErrInvalidDiscount):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update promo")
		}
		return
	}

	writeJSON(w, http.StatusOK, mapPromo(p))
}

func (h *Handler) AdminDeletePromo(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid promo id")
		return
	}

	if err := h.Promos.Delete(r.Context(), id); err != nil {
		if errors.Is(err, promo.ErrPromoNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete promo")
		return
	}

	writeMessage(w, http.StatusOK, "promo deleted")
}

// ---------- orders ----------

func (h *Handler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	filter := &order.FilterInput{}

	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := order.OrderStatus(status)
		filter.Status = &s
	}
	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.DateFrom = &t
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.DateTo = &t
		}
	}

	limit, page := parsePagination(r)

	orders, err := h.Orders.ListAll(r.Context(), filter, limit, page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	writeJSON(w, http.StatusOK, mapOrders(orders))
}

// AdminUpdateOrderStatus moves an order through the fulfilment lifecycle.
// Illegal transitions are rejected, not written.
func (h *Handler) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.Orders.UpdateStatus(r.Context(), id, order.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrInvalidTransition):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update order status")
		}
		return
	}

	writeMessage(w, http.StatusOK, "order status updated")
}

// ---------- uploads ----------

const maxUploadBytes = 10 << 20 // 10MB

func (h *Handler) AdminUploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	result, err := h.Uploader.Upload(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, http.StatusBadGateway, "image upload failed")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}
