package app

import (
	"context"

	cartdomain "github.com/luxestone/storefront/internal/cart/domain"
	orderdomain "github.com/luxestone/storefront/internal/order/domain"
)

type CartReader interface {
	GetCart(ctx context.Context, cartID string) (cartdomain.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

// Product is the slice of the catalog checkout cares about.
type Product struct {
	ID    int64
	Name  string
	Stock int
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID int64) (Product, error)
}

type CouponResolver interface {
	// Resolve returns the discount percent for an active code.
	Resolve(ctx context.Context, code string) (int, error)
}

type OrderWriter interface {
	Create(ctx context.Context, order orderdomain.Order) (orderdomain.Order, error)
}
