package api

import (
	"errors"
	"net/http"
	"strconv"

	"dhatucraft-be/internal/product"
	"dhatucraft-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

func parsePagination(r *http.Request) (limit, page *int32) {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			l := int32(n)
			limit = &l
		}
	}
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			p := int32(n)
			page = &p
		}
	}
	return limit, page
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := &product.FilterInput{}

	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if cat := r.URL.Query().Get("category"); cat != "" {
		id, err := utils.ToUint(cat)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		filter.CategoryID = &id
	}

	limit, page := parsePagination(r)

	products, err := h.Products.List(r.Context(), filter, limit, page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = mapProduct(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.Products.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	var filter *string
	if search := r.URL.Query().Get("search"); search != "" {
		filter = &search
	}

	limit, page := parsePagination(r)

	categories, err := h.Categories.List(r.Context(), filter, limit, page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = mapCategory(c)
	}
	writeJSON(w, http.StatusOK, out)
}
