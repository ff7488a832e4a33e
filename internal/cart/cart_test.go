package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
)

type catalogMock struct {
	mock.Mock
}

func (m *catalogMock) IsProductAvailable(productID string) bool {
	args := m.Called(productID)
	return args.Bool(0)
}

func (m *catalogMock) GetProductPrice(productID string) (float64, error) {
	args := m.Called(productID)
	return args.Get(0).(float64), args.Error(1)
}

// sequenceStub answers "available" for everything and hands out prices in
// the order they are asked for, recording which products were priced.
type sequenceStub struct {
	prices []float64
	priced []string
}

func (s *sequenceStub) IsProductAvailable(string) bool { return true }

func (s *sequenceStub) GetProductPrice(productID string) (float64, error) {
	if len(s.priced) >= len(s.prices) {
		return 0, errors.New("stub: no more prices")
	}
	p := s.prices[len(s.priced)]
	s.priced = append(s.priced, productID)
	return p, nil
}

func newCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	svc := catalog.NewService(nil)
	_, err := svc.AddProduct("101", "Laptop", 999.99, 10)
	require.NoError(t, err)
	_, err = svc.AddProduct("102", "Mouse", 29.99, 5)
	require.NoError(t, err)
	return svc
}

func TestCart_AddProduct(t *testing.T) {
	t.Run("available product is appended", func(t *testing.T) {
		m := &catalogMock{}
		m.On("IsProductAvailable", "101").Return(true).Once()

		c := New("customer-1")
		require.NoError(t, c.AddProduct("101", 2, m))

		assert.Equal(t, 1, c.ItemCount())
		assert.Equal(t, []Item{{ProductID: "101", Quantity: 2}}, c.Items())
		m.AssertExpectations(t)
		m.AssertNotCalled(t, "GetProductPrice", mock.Anything)
	})

	t.Run("unavailable product leaves cart unchanged", func(t *testing.T) {
		m := &catalogMock{}
		m.On("IsProductAvailable", "101").Return(true)
		m.On("IsProductAvailable", "555").Return(false)

		c := New("customer-1")
		require.NoError(t, c.AddProduct("101", 1, m))

		err := c.AddProduct("555", 1, m)
		require.Error(t, err)
		assert.EqualError(t, err, "Product 555 is not available")
		assert.ErrorIs(t, err, ErrUnavailable)

		var ue *UnavailableError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "555", ue.ProductID)

		assert.Equal(t, 1, c.ItemCount())
		m.AssertExpectations(t)
	})

	t.Run("non-positive quantity never reaches the catalog", func(t *testing.T) {
		m := &catalogMock{}
		c := New("customer-1")

		for _, q := range []int{0, -1} {
			err := c.AddProduct("101", q, m)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
		}
		assert.Zero(t, c.ItemCount())
		m.AssertNotCalled(t, "IsProductAvailable", mock.Anything)
	})

	t.Run("out of stock in real catalog", func(t *testing.T) {
		svc := newCatalog(t)
		require.NoError(t, svc.UpdateStock("101", 0))

		c := New("customer-1")
		err := c.AddProduct("101", 1, svc)
		assert.EqualError(t, err, "Product 101 is not available")
		assert.Zero(t, c.ItemCount())
	})

	t.Run("unregistered product in real catalog", func(t *testing.T) {
		c := New("customer-1")
		err := c.AddProduct("404", 1, newCatalog(t))
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Contains(t, err.Error(), "404")
	})
}

func TestCart_CalculateTotal(t *testing.T) {
	t.Run("real catalog", func(t *testing.T) {
		svc := newCatalog(t)
		c := New("customer-1")
		require.NoError(t, c.AddProduct("101", 1, svc))
		require.NoError(t, c.AddProduct("102", 2, svc))

		total, err := c.CalculateTotal(svc)
		require.NoError(t, err)
		assert.InDelta(t, 1059.97, total, 0.001)
	})

	t.Run("mocked prices are fetched once per product", func(t *testing.T) {
		m := &catalogMock{}
		m.On("IsProductAvailable", mock.Anything).Return(true)
		m.On("GetProductPrice", "p1").Return(50.00, nil).Once()
		m.On("GetProductPrice", "p2").Return(25.00, nil).Once()

		c := New("customer-1")
		require.NoError(t, c.AddProduct("p1", 2, m))
		require.NoError(t, c.AddProduct("p2", 1, m))
		m.AssertNotCalled(t, "GetProductPrice", mock.Anything)

		total, err := c.CalculateTotal(m)
		require.NoError(t, err)
		assert.Equal(t, 125.00, total)

		m.AssertExpectations(t)
		m.AssertNumberOfCalls(t, "GetProductPrice", 2)
	})

	t.Run("stubbed prices follow insertion order", func(t *testing.T) {
		stub := &sequenceStub{prices: []float64{50.00, 25.00}}

		c := New("customer-1")
		require.NoError(t, c.AddProduct("p1", 2, stub))
		require.NoError(t, c.AddProduct("p2", 1, stub))
		assert.Empty(t, stub.priced)

		total, err := c.CalculateTotal(stub)
		require.NoError(t, err)
		assert.Equal(t, 125.00, total)
		assert.Equal(t, []string{"p1", "p2"}, stub.priced)
	})

	t.Run("empty cart is exactly zero", func(t *testing.T) {
		m := &catalogMock{}

		total, err := New("customer-1").CalculateTotal(m)
		require.NoError(t, err)
		assert.Equal(t, 0.0, total)
		m.AssertNotCalled(t, "GetProductPrice", mock.Anything)
	})

	t.Run("price lookup failure surfaces", func(t *testing.T) {
		m := &catalogMock{}
		m.On("IsProductAvailable", "gone").Return(true)
		m.On("GetProductPrice", "gone").Return(0.0, catalog.ErrNotFound)

		c := New("customer-1")
		require.NoError(t, c.AddProduct("gone", 1, m))

		_, err := c.CalculateTotal(m)
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestCart_ItemCountCountsLines(t *testing.T) {
	svc := newCatalog(t)
	c := New("customer-1")

	require.NoError(t, c.AddProduct("101", 3, svc))
	require.NoError(t, c.AddProduct("102", 4, svc))
	assert.Equal(t, 2, c.ItemCount())

	// Re-adding the same product appends another line.
	require.NoError(t, c.AddProduct("101", 1, svc))
	assert.Equal(t, 3, c.ItemCount())
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	c := New("customer-1")
	require.NoError(t, c.AddProduct("101", 1, newCatalog(t)))

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}
