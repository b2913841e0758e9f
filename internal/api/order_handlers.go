package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dhatucraft-be/internal/order"
	"dhatucraft-be/internal/user"
	"dhatucraft-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

// PlaceOrder accepts the checkout payload. The total is caller-supplied and
// trusted; the one invariant the server defends is non-negative stock.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]order.LineItem, len(req.CartItems))
	for i, it := range req.CartItems {
		items[i] = order.LineItem{
			ProductID: it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
			Image:     it.Image,
		}
	}

	_, err := h.Orders.PlaceOrder(r.Context(), order.PlaceOrderInput{
		UserID:      userID,
		Username:    req.Username,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Items:       items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingUserID),
			errors.Is(err, order.ErrEmptyCart),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrInvalidTotal):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrInsufficientStock):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, order.ErrPlaceOrderFailed.Error())
		}
		return
	}

	writeMessage(w, http.StatusOK, "order placed successfully")
}

func (h *Handler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	requested, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	callerID, _ := utils.GetUserIDFromContext(r.Context())
	isAdmin := utils.GetUserRoleFromContext(r.Context()) == string(user.RoleAdmin)

	if requested != callerID && !isAdmin {
		writeError(w, http.StatusForbidden, "cannot access others' orders")
		return
	}

	orders, err := h.Orders.ListByUser(r.Context(), requested)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	writeJSON(w, http.StatusOK, mapOrders(orders))
}

// CancelOrder is the customer-facing cancellation. The 6-hour window is
// checked here on the server, regardless of what the client shows.
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	callerID, _ := utils.GetUserIDFromContext(r.Context())

	err = h.Orders.Cancel(r.Context(), callerID, orderID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrUnauthorized):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, order.ErrCancelWindowClosed),
			errors.Is(err, order.ErrInvalidTransition):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to cancel order")
		}
		return
	}

	writeMessage(w, http.StatusOK, "order cancelled")
}
