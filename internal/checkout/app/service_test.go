package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/luxestone/storefront/internal/cart/domain"
	"github.com/luxestone/storefront/internal/checkout/domain"
	orderdomain "github.com/luxestone/storefront/internal/order/domain"
)

type stubCarts struct {
	cart       cartdomain.Cart
	getErr     error
	clearCalls int
}

func (s *stubCarts) GetCart(context.Context, string) (cartdomain.Cart, error) {
	return s.cart, s.getErr
}

func (s *stubCarts) Clear(context.Context, string) error {
	s.clearCalls++
	return nil
}

type stubCatalog struct {
	products map[int64]Product
}

func (s *stubCatalog) GetProduct(_ context.Context, id int64) (Product, error) {
	p, ok := s.products[id]
	if !ok {
		return Product{}, assert.AnError
	}
	return p, nil
}

type stubCoupons struct {
	percent int
	err     error
	calls   int
}

func (s *stubCoupons) Resolve(context.Context, string) (int, error) {
	s.calls++
	return s.percent, s.err
}

type stubOrders struct {
	created []orderdomain.Order
	err     error
}

func (s *stubOrders) Create(_ context.Context, order orderdomain.Order) (orderdomain.Order, error) {
	if s.err != nil {
		return orderdomain.Order{}, s.err
	}
	order.ID = int64(len(s.created) + 1)
	s.created = append(s.created, order)
	return order, nil
}

func twoGraniteSlabs() cartdomain.Cart {
	return cartdomain.Cart{
		ID: "session-1",
		Lines: []cartdomain.Line{
			{ID: "line-1", ProductID: 1, Name: "Granite Slab", UnitPrice: 1000, Quantity: 2, Size: "L", Color: "Grey"},
		},
	}
}

func newTestService(carts *stubCarts, catalog *stubCatalog, coupons *stubCoupons, orders *stubOrders) *Service {
	if catalog == nil {
		catalog = &stubCatalog{products: map[int64]Product{
			1: {ID: 1, Name: "Granite Slab", Stock: 10},
		}}
	}
	return NewService(carts, catalog, coupons, orders, 250)
}

func validSubmission() domain.Submission {
	return domain.Submission{
		CartID:    "session-1",
		FirstName: "Ayu",
		LastName:  "Lestari",
		Email:     "ayu@example.com",
		Phone:     "0812",
		Address:   "Jl. Batu 1",
		City:      "Bandung",
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("missing field rejects before any side effect", func(t *testing.T) {
		carts := &stubCarts{cart: twoGraniteSlabs()}
		orders := &stubOrders{}
		svc := newTestService(carts, nil, &stubCoupons{}, orders)

		for _, mutate := range map[string]func(*domain.Submission){
			"name":    func(s *domain.Submission) { s.FirstName = " " },
			"address": func(s *domain.Submission) { s.Address = "" },
			"phone":   func(s *domain.Submission) { s.Phone = "" },
		} {
			sub := validSubmission()
			mutate(&sub)
			_, err := svc.Submit(ctx, sub)
			assert.ErrorIs(t, err, ErrMissingField)
		}
		assert.Empty(t, orders.created)
		assert.Zero(t, carts.clearCalls)
	})

	t.Run("empty cart", func(t *testing.T) {
		carts := &stubCarts{cart: cartdomain.Cart{ID: "session-1"}}
		orders := &stubOrders{}
		svc := newTestService(carts, nil, &stubCoupons{}, orders)

		_, err := svc.Submit(ctx, validSubmission())
		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Empty(t, orders.created)
	})

	t.Run("out of stock line blocks the order", func(t *testing.T) {
		carts := &stubCarts{cart: twoGraniteSlabs()}
		catalog := &stubCatalog{products: map[int64]Product{
			1: {ID: 1, Name: "Granite Slab", Stock: 0},
		}}
		orders := &stubOrders{}
		svc := newTestService(carts, catalog, &stubCoupons{}, orders)

		_, err := svc.Submit(ctx, validSubmission())
		assert.ErrorIs(t, err, ErrOutOfStock)
		assert.Empty(t, orders.created)
		assert.Zero(t, carts.clearCalls)
	})

	t.Run("unknown coupon leaves the cart untouched", func(t *testing.T) {
		carts := &stubCarts{cart: twoGraniteSlabs()}
		coupons := &stubCoupons{err: assert.AnError}
		orders := &stubOrders{}
		svc := newTestService(carts, nil, coupons, orders)

		sub := validSubmission()
		sub.CouponCode = "NOPE"
		_, err := svc.Submit(ctx, sub)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, orders.created)
		assert.Zero(t, carts.clearCalls)
	})

	t.Run("racing stock loss surfaces and keeps the cart", func(t *testing.T) {
		carts := &stubCarts{cart: twoGraniteSlabs()}
		orders := &stubOrders{err: orderdomain.ErrInsufficientStock}
		svc := newTestService(carts, nil, &stubCoupons{}, orders)

		_, err := svc.Submit(ctx, validSubmission())
		assert.ErrorIs(t, err, orderdomain.ErrInsufficientStock)
		assert.Zero(t, carts.clearCalls)
	})

	t.Run("success snapshots, prices and clears the cart", func(t *testing.T) {
		carts := &stubCarts{cart: twoGraniteSlabs()}
		coupons := &stubCoupons{percent: 10}
		orders := &stubOrders{}
		svc := newTestService(carts, nil, coupons, orders)

		sub := validSubmission()
		sub.CouponCode = "SAVE10"
		receipt, err := svc.Submit(ctx, sub)
		require.NoError(t, err)

		require.Len(t, orders.created, 1)
		order := orders.created[0]

		assert.Equal(t, "Ayu Lestari", order.CustomerName)
		assert.Equal(t, "Jl. Batu 1, Bandung", order.Address)
		assert.Equal(t, int64(2000), order.Subtotal)
		assert.Equal(t, int64(250), order.ShippingFee)
		assert.Equal(t, int64(200), order.Discount)
		assert.Equal(t, int64(2050), order.TotalAmount)
		assert.Equal(t, orderdomain.StatusPending, order.Status)
		assert.Equal(t, orderdomain.PaymentCashOnDelivery, order.PaymentMethod)

		require.Len(t, order.Items, 1)
		assert.Equal(t, int64(1), order.Items[0].ProductID)
		assert.Equal(t, int64(1000), order.Items[0].UnitPrice)
		assert.Equal(t, 2, order.Items[0].Quantity)
		assert.Equal(t, "L", order.Items[0].Size)

		assert.Equal(t, int64(1), receipt.OrderID)
		assert.Equal(t, int64(2050), receipt.TotalAmount)
		assert.Equal(t, 1, carts.clearCalls)
	})
}

func TestQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("without coupon the resolver is never called", func(t *testing.T) {
		coupons := &stubCoupons{percent: 10}
		svc := newTestService(&stubCarts{cart: twoGraniteSlabs()}, nil, coupons, &stubOrders{})

		quote, err := svc.Quote(ctx, "session-1", "")
		require.NoError(t, err)
		assert.Equal(t, int64(2250), quote.Total)
		assert.Zero(t, coupons.calls)
	})

	t.Run("with coupon", func(t *testing.T) {
		coupons := &stubCoupons{percent: 10}
		svc := newTestService(&stubCarts{cart: twoGraniteSlabs()}, nil, coupons, &stubOrders{})

		quote, err := svc.Quote(ctx, "session-1", "SAVE10")
		require.NoError(t, err)
		assert.Equal(t, int64(200), quote.Discount)
		assert.Equal(t, int64(2050), quote.Total)
	})

	t.Run("empty cart", func(t *testing.T) {
		svc := newTestService(&stubCarts{cart: cartdomain.Cart{}}, nil, &stubCoupons{}, &stubOrders{})
		_, err := svc.Quote(ctx, "session-1", "")
		assert.ErrorIs(t, err, ErrEmptyCart)
	})
}
