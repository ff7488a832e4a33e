package cart

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable     = errors.New("product not available")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Catalog is what a cart needs to know about products. catalog.Service
// satisfies it, as does any test double with the same two methods.
type Catalog interface {
	IsProductAvailable(productID string) bool
	GetProductPrice(productID string) (float64, error)
}

// UnavailableError is returned when a product cannot be added because the
// catalog reports it as unavailable.
type UnavailableError struct {
	ProductID string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("Product %s is not available", e.ProductID)
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

// Cart holds one customer's line items in the order they were added.
// Prices are not stored; they are read from the catalog when totalling.
type Cart struct {
	customerID string
	items      []Item
}

func New(customerID string) *Cart {
	return &Cart{customerID: customerID}
}

func (c *Cart) CustomerID() string {
	return c.customerID
}

// AddProduct appends a line for productID if the catalog reports it as
// available. On failure the cart is left untouched.
func (c *Cart) AddProduct(productID string, quantity int, catalog Catalog) error {
	if quantity < 1 {
		return fmt.Errorf("add %s x%d: %w", productID, quantity, ErrInvalidQuantity)
	}
	if !catalog.IsProductAvailable(productID) {
		return &UnavailableError{ProductID: productID}
	}

	c.items = append(c.items, Item{ProductID: productID, Quantity: quantity})
	return nil
}

// CalculateTotal sums quantity * price over every line, asking the catalog
// for each line's price exactly once.
func (c *Cart) CalculateTotal(catalog Catalog) (float64, error) {
	total := 0.0
	for _, it := range c.items {
		price, err := catalog.GetProductPrice(it.ProductID)
		if err != nil {
			return 0, fmt.Errorf("price for %s: %w", it.ProductID, err)
		}
		total += float64(it.Quantity) * price
	}
	return total, nil
}

// ItemCount is the number of lines, not the sum of their quantities.
func (c *Cart) ItemCount() int {
	return len(c.items)
}

func (c *Cart) Items() []Item {
	return append([]Item(nil), c.items...)
}
