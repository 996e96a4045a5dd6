package app

import (
	"context"
	"errors"
	"strings"

	"github.com/luxestone/storefront/internal/order/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Stats struct {
	TotalSales    int64
	TotalOrders   int
	PendingOrders int
}

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// Create persists a submitted order. The order arrives fully priced and
// snapshotted; the repo runs it together with the stock decrements in one
// transaction.
func (s *Service) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	if len(order.Items) == 0 {
		return domain.Order{}, ErrInvalidInput
	}
	order.Status = domain.StatusPending
	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.PaymentCashOnDelivery
	}
	return s.repo.CreateOrderTx(ctx, order)
}

// Track is the public lookup: a bare numeric id, no identity check.
func (s *Service) Track(ctx context.Context, id int64) (domain.Order, error) {
	if id <= 0 {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return s.repo.Get(ctx, id)
}

// History returns the owner's orders, most recent first.
func (s *Service) History(ctx context.Context, email string) ([]domain.Order, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByEmail(ctx, email)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus applies an administrator transition after checking it against
// the lifecycle table.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next domain.Status) (domain.Order, error) {
	if !next.Valid() || next == domain.StatusPending {
		return domain.Order{}, domain.ErrInvalidTransition
	}
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !order.Status.CanTransitionTo(next) {
		return domain.Order{}, domain.ErrInvalidTransition
	}
	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return domain.Order{}, err
	}
	order.Status = next
	return order, nil
}

// Delete is the separate, irreversible admin action.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrOrderNotFound
	}
	return s.repo.Delete(ctx, id)
}

// DashboardStats aggregates the admin landing numbers.
func (s *Service) DashboardStats(ctx context.Context) (Stats, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{TotalOrders: len(orders)}
	for _, o := range orders {
		stats.TotalSales += o.TotalAmount
		if o.Status == domain.StatusPending {
			stats.PendingOrders++
		}
	}
	return stats, nil
}
