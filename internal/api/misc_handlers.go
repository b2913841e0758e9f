package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dhatucraft-be/internal/order"
	"dhatucraft-be/internal/payment"
	"dhatucraft-be/internal/user"
	"dhatucraft-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) PaymentInstructions(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64)
	if err != nil || amount < 0 {
		writeError(w, http.StatusBadRequest, "amount must be a non-negative integer")
		return
	}

	writeJSON(w, http.StatusOK, payment.ForAmount(amount))
}

func (h *Handler) MetricsSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Metrics.Snapshot())
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	callerID, _ := utils.GetUserIDFromContext(r.Context())
	isAdmin := utils.GetUserRoleFromContext(r.Context()) == string(user.RoleAdmin)

	o, err := h.Orders.GetDetail(r.Context(), callerID, orderID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrUnauthorized):
			writeError(w, http.StatusForbidden, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to get order")
		}
		return
	}

	writeJSON(w, http.StatusOK, mapOrder(o))
}
