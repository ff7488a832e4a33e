package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

type OrderHandler struct {
	history *order.MemoryRepository
}

func NewOrderHandler(history *order.MemoryRepository) *OrderHandler {
	return &OrderHandler{history: history}
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.history.GetByID(chi.URLParam(r, "orderId"))
	if errors.Is(err, order.ErrNotFound) {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.history.ListByCustomer(chi.URLParam(r, "customerId")))
}
