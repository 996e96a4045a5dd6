package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	cartdomain "github.com/luxestone/storefront/internal/cart/domain"
	"github.com/luxestone/storefront/internal/checkout/domain"
	orderdomain "github.com/luxestone/storefront/internal/order/domain"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrMissingField = errors.New("missing required checkout field")
	ErrOutOfStock   = errors.New("product is out of stock")
)

type Service struct {
	carts   CartReader
	catalog CatalogReader
	coupons CouponResolver
	orders  OrderWriter

	shippingFee   int64
	maxConcurrent int
}

func NewService(carts CartReader, catalog CatalogReader, coupons CouponResolver, orders OrderWriter, shippingFee int64) *Service {
	return &Service{
		carts:         carts,
		catalog:       catalog,
		coupons:       coupons,
		orders:        orders,
		shippingFee:   shippingFee,
		maxConcurrent: 10,
	}
}

// Quote prices the session's cart with an optional coupon code, without any
// side effect. Used by the cart page and reused by Submit.
func (s *Service) Quote(ctx context.Context, cartID, couponCode string) (domain.Quote, error) {
	cart, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		return domain.Quote{}, err
	}
	if cart.Empty() {
		return domain.Quote{}, ErrEmptyCart
	}

	percent := 0
	if strings.TrimSpace(couponCode) != "" {
		percent, err = s.coupons.Resolve(ctx, couponCode)
		if err != nil {
			return domain.Quote{}, err
		}
	}

	return domain.Price(cart.Subtotal(), s.shippingFee, percent), nil
}

// Submit turns the session's cart into a pending order.
//
// Validation happens before any side effect: an empty cart or a missing
// name/address/phone rejects the submission outright. Stock is checked up
// front per line; the authoritative conditional decrement happens inside the
// order transaction, so a racing shopper makes the submission fail rather
// than oversell. On success the cart is cleared; on any failure it is left
// untouched for retry.
func (s *Service) Submit(ctx context.Context, sub domain.Submission) (domain.Receipt, error) {
	if err := validate(sub); err != nil {
		return domain.Receipt{}, err
	}

	cart, err := s.carts.GetCart(ctx, sub.CartID)
	if err != nil {
		return domain.Receipt{}, err
	}
	if cart.Empty() {
		return domain.Receipt{}, ErrEmptyCart
	}

	if err := s.checkAvailability(ctx, cart); err != nil {
		return domain.Receipt{}, err
	}

	percent := 0
	if strings.TrimSpace(sub.CouponCode) != "" {
		percent, err = s.coupons.Resolve(ctx, sub.CouponCode)
		if err != nil {
			return domain.Receipt{}, err
		}
	}
	quote := domain.Price(cart.Subtotal(), s.shippingFee, percent)

	items := make([]orderdomain.Item, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, orderdomain.Item{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Color:     line.Color,
		})
	}

	order := orderdomain.Order{
		CustomerName:  sub.CustomerName(),
		Email:         sub.Email,
		Phone:         sub.Phone,
		Address:       sub.FullAddress(),
		Subtotal:      quote.Subtotal,
		ShippingFee:   quote.ShippingFee,
		Discount:      quote.Discount,
		TotalAmount:   quote.Total,
		CouponCode:    sub.CouponCode,
		PaymentMethod: orderdomain.PaymentCashOnDelivery,
		Status:        orderdomain.StatusPending,
		Items:         items,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return domain.Receipt{}, err
	}

	// The order is committed; a cart that fails to clear is an annoyance,
	// not a lost sale.
	_ = s.carts.Clear(ctx, sub.CartID)

	return domain.Receipt{
		OrderID:       created.ID,
		TotalAmount:   created.TotalAmount,
		PaymentMethod: created.PaymentMethod,
	}, nil
}

// checkAvailability fans out to the catalog and rejects the submission when
// any line's product has no stock left.
func (s *Service) checkAvailability(ctx context.Context, cart cartdomain.Cart) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for _, line := range cart.Lines {
		line := line
		g.Go(func() error {
			product, err := s.catalog.GetProduct(ctx, line.ProductID)
			if err != nil {
				return fmt.Errorf("product %d: %w", line.ProductID, err)
			}
			if product.Stock <= 0 {
				return fmt.Errorf("%s: %w", product.Name, ErrOutOfStock)
			}
			return nil
		})
	}
	return g.Wait()
}

func validate(sub domain.Submission) error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", sub.FirstName},
		{"address", sub.Address},
		{"phone", sub.Phone},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s: %w", field.name, ErrMissingField)
		}
	}
	return nil
}
