package adapter

import (
	"context"

	orderapp "github.com/luxestone/storefront/internal/order/app"
	orderdomain "github.com/luxestone/storefront/internal/order/domain"
)

type OrderServiceWriter struct {
	svc *orderapp.Service
}

func NewOrderServiceWriter(svc *orderapp.Service) *OrderServiceWriter {
	return &OrderServiceWriter{svc: svc}
}

func (w *OrderServiceWriter) Create(ctx context.Context, order orderdomain.Order) (orderdomain.Order, error) {
	return w.svc.Create(ctx, order)
}
