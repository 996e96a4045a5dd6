package app

import (
	"context"

	"github.com/luxestone/storefront/internal/cart/domain"
)

type CartRepo interface {
	Get(ctx context.Context, cartID string) (domain.Cart, error)
	Create(ctx context.Context, cartID string) (domain.Cart, error)
	InsertLine(ctx context.Context, cartID string, line domain.Line) error
	IncrementLine(ctx context.Context, lineID string, by int) error
	SetLineQuantity(ctx context.Context, lineID string, qty int) error
	RemoveLine(ctx context.Context, cartID, lineID string) error
	Clear(ctx context.Context, cartID string) error
}
