package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dhatucraft-be/internal/promo"
)

// ValidatePromo applies a code against the caller's subtotal. An unknown or
// expired code is an ordinary rejection, never a 5xx.
func (h *Handler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	var req validatePromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Subtotal < 0 {
		writeError(w, http.StatusBadRequest, "subtotal must be non-negative")
		return
	}

	v, err := h.Promos.Validate(r.Context(), req.Code, req.Subtotal, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, promo.ErrCodeRequired):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, promo.ErrPromoNotFound):
			writeError(w, http.StatusNotFound, "promo code is invalid or expired")
		default:
			writeError(w, http.StatusInternalServerError, "failed to validate promo")
		}
		return
	}

	writeJSON(w, http.StatusOK, validatePromoResponse{
		Code:            v.Code,
		DiscountPercent: v.DiscountPercent,
		DiscountAmount:  v.DiscountAmount,
		Payable:         v.Payable,
	})
}
