package app

import (
	"context"

	"github.com/luxestone/storefront/internal/order/domain"
)

type OrderRepo interface {
	// CreateOrderTx persists the order, its item snapshots, the conditional
	// stock decrements and the outbound notification row as one transaction.
	CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error)

	Get(ctx context.Context, id int64) (domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
}
