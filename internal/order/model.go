package order

import (
	"time"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
)

type Order struct {
	ID         string      `json:"orderId"`
	CustomerID string      `json:"customerId"`
	Status     Status      `json:"status"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Items      []cart.Item `json:"items"`
	Total      float64     `json:"totalAmount"`
	CreatedAt  time.Time   `json:"createdAt"`
}
