package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrNotFound       = errors.New("product not found")
	ErrInvalidProduct = errors.New("invalid product")
)

// NotFoundError carries the id of a product the catalog does not know.
type NotFoundError struct {
	ProductID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Service is the product catalog. It is the only authority on whether a
// product exists, what it costs and how many units are in stock.
type Service struct {
	logger *zap.Logger

	mu       sync.RWMutex
	products map[string]Product
}

func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		logger:   logger,
		products: make(map[string]Product),
	}
}

// AddProduct registers a product, replacing any existing entry with the same id.
func (s *Service) AddProduct(id, name string, price float64, stock int) (Product, error) {
	if !validID(id) || !validPrice(price) || stock < 0 {
		return Product{}, ErrInvalidProduct
	}

	p := Product{ID: id, Name: name, Price: price, Stock: stock}

	s.mu.Lock()
	_, replaced := s.products[id]
	s.products[id] = p
	s.mu.Unlock()

	s.logger.Debug("product registered",
		zap.String("productId", id),
		zap.Float64("price", price),
		zap.Int("stock", stock),
		zap.Bool("replaced", replaced),
	)
	return p, nil
}

// Ids are looked up verbatim, so one with surrounding whitespace could never
// be found again under a trimmed spelling.
func validID(id string) bool {
	return id != "" && strings.TrimSpace(id) == id
}

func validPrice(price float64) bool {
	return price >= 0 && !math.IsInf(price, 1)
}

func (s *Service) UpdateStock(id string, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return &NotFoundError{ProductID: id}
	}
	p.Stock = stock
	s.products[id] = p

	s.logger.Debug("stock updated", zap.String("productId", id), zap.Int("stock", stock))
	return nil
}

func (s *Service) IsProductAvailable(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	return ok && p.Available()
}

func (s *Service) GetProductPrice(id string) (float64, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return 0, err
	}
	return p.Price, nil
}

func (s *Service) GetProduct(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, &NotFoundError{ProductID: id}
	}
	return p, nil
}

// ListProducts returns every registered product ordered by id.
func (s *Service) ListProducts() []Product {
	s.mu.RLock()
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
