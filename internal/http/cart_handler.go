package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

// OrderCreator turns a cart into a confirmed order.
type OrderCreator interface {
	CreateOrder(ctx context.Context, c *cart.Cart, email, phone string) (order.Order, error)
}

type CartHandler struct {
	carts   *cart.Store
	catalog cart.Catalog
	orders  OrderCreator
	history *order.MemoryRepository
	logger  *zap.Logger
}

func NewCartHandler(carts *cart.Store, catalog cart.Catalog, orders OrderCreator, history *order.MemoryRepository, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: catalog,
		orders:  orders,
		history: history,
		logger:  logger,
	}
}

type cartResponse struct {
	CustomerID string      `json:"customerId"`
	Items      []cart.Item `json:"items"`
	ItemCount  int         `json:"itemCount"`
}

func toCartResponse(c *cart.Cart) cartResponse {
	items := c.Items()
	if items == nil {
		items = []cart.Item{}
	}
	return cartResponse{CustomerID: c.CustomerID(), Items: items, ItemCount: c.ItemCount()}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	var resp cartResponse
	_ = h.carts.View(chi.URLParam(r, "customerId"), func(c *cart.Cart) error {
		resp = toCartResponse(c)
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(body.ProductID) == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	var resp cartResponse
	err := h.carts.Update(chi.URLParam(r, "customerId"), func(c *cart.Cart) error {
		if err := c.AddProduct(body.ProductID, body.Quantity, h.catalog); err != nil {
			return err
		}
		resp = toCartResponse(c)
		return nil
	})
	switch {
	case errors.Is(err, cart.ErrUnavailable):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, cart.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, cart.ErrInvalidQuantity.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to update cart")
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *CartHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")

	var total float64
	err := h.carts.View(customerID, func(c *cart.Cart) error {
		var err error
		total, err = c.CalculateTotal(h.catalog)
		return err
	})
	if err != nil {
		h.logger.Error("calculate cart total", zap.String("customerId", customerID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to calculate total")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"customerId": customerID,
		"total":      total,
	})
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")

	var body struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(body.Email) == "" || strings.TrimSpace(body.Phone) == "" {
		writeError(w, http.StatusBadRequest, "email and phone are required")
		return
	}

	var created order.Order
	err := h.carts.Checkout(customerID, func(c *cart.Cart) error {
		o, err := h.orders.CreateOrder(r.Context(), c, body.Email, body.Phone)
		if err != nil {
			return err
		}
		if err := h.history.Save(o); err != nil {
			return err
		}
		created = o
		return nil
	})
	if errors.Is(err, order.ErrEmptyCart) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("checkout", zap.String("customerId", customerID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
