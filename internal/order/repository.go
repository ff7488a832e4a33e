package order

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// MemoryRepository keeps confirmed orders for the lifetime of the process.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{orders: make(map[string]Order)}
}

func (r *MemoryRepository) Save(o Order) error {
	if o.ID == "" {
		return errors.New("order id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	return nil
}

func (r *MemoryRepository) GetByID(orderID string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[orderID]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

// ListByCustomer returns the customer's orders, newest first.
func (r *MemoryRepository) ListByCustomer(customerID string) []Order {
	r.mu.RLock()
	out := make([]Order, 0)
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
