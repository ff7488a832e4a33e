package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/middleware"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

const serviceName = "storefront"

type Deps struct {
	Logger *zap.Logger

	Catalog *catalog.Service
	Carts   *cart.Store
	Orders  OrderCreator
	History *order.MemoryRepository
}

func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// outer -> inner
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recover(logger))

	r.Get("/health", healthHandler)

	products := NewCatalogHandler(d.Catalog)
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", products.ListProducts)
		r.Post("/", products.CreateProduct)
		r.Get("/{productId}", products.GetProduct)
		r.Put("/{productId}/stock", products.UpdateStock)
	})

	carts := NewCartHandler(d.Carts, d.Catalog, d.Orders, d.History, logger)
	r.Route("/api/carts/{customerId}", func(r chi.Router) {
		r.Get("/", carts.GetCart)
		r.Post("/items", carts.AddItem)
		r.Get("/total", carts.GetTotal)
		r.Post("/checkout", carts.Checkout)
	})

	orders := NewOrderHandler(d.History)
	r.Get("/api/orders/{orderId}", orders.GetOrder)
	r.Get("/api/customers/{customerId}/orders", orders.ListByCustomer)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
}
