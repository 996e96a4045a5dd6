package app

import (
	"context"

	"github.com/luxestone/storefront/internal/notification/domain"
)

type OutboxRepo interface {
	ListPending(ctx context.Context, limit int) ([]domain.Envelope, error)
	MarkSent(ctx context.Context, id string) error
}

type Publisher interface {
	Publish(ctx context.Context, env domain.Envelope) error
}
