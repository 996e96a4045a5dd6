package adapter

import (
	"context"

	cartapp "github.com/luxestone/storefront/internal/cart/app"
	cartdomain "github.com/luxestone/storefront/internal/cart/domain"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context, cartID string) (cartdomain.Cart, error) {
	return r.svc.GetCart(ctx, cartID)
}

func (r *CartServiceReader) Clear(ctx context.Context, cartID string) error {
	return r.svc.Clear(ctx, cartID)
}
