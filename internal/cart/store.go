package cart

import "sync"

// Store keeps one cart per customer for the lifetime of the process. Carts
// are only reachable through callbacks run under the store lock, so a cart is
// never read or mutated by two requests at once.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Has reports whether the customer currently has a cart.
func (s *Store) Has(customerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.carts[customerID]
	return ok
}

// Update runs fn against the customer's cart while holding the store lock,
// creating the cart first if needed.
func (s *Store) Update(customerID string, fn func(c *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[customerID]
	if !ok {
		c = New(customerID)
		s.carts[customerID] = c
	}
	return fn(c)
}

// View runs fn against the customer's cart while holding the store lock
// without creating one; a customer without a cart is handed an empty one.
func (s *Store) View(customerID string, fn func(c *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.lookup(customerID))
}

// Checkout runs fn against the customer's cart while holding the store lock
// and drops the cart when fn succeeds. A customer without a cart is handed an
// empty one.
func (s *Store) Checkout(customerID string, fn func(c *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.lookup(customerID)); err != nil {
		return err
	}
	delete(s.carts, customerID)
	return nil
}

func (s *Store) lookup(customerID string) *Cart {
	if c, ok := s.carts[customerID]; ok {
		return c
	}
	return New(customerID)
}
