package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/luxestone/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrProductNotFound = errors.New("product not found")
)

type Service struct {
	repo ProductRepo
	now  func() time.Time
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Price <= 0 || p.Stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.List(ctx, strings.TrimSpace(category))
}

// UpdateProduct covers the admin edits: price, promotional fields and
// metadata. Stock is only ever changed through Restock or order submission.
func (s *Service) UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.ID <= 0 || p.Name == "" || p.Price <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Restock(ctx context.Context, id int64, qty int) error {
	if id <= 0 || qty <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Restock(ctx, id, qty)
}

// Presentation returns the display state a product page needs alongside the
// record itself: stock badge and, for flash sales, the countdown.
func (s *Service) Presentation(p domain.Product) (domain.StockStatus, domain.SaleCountdown) {
	return domain.StockStatusFor(p.Stock), domain.SaleCountdownFor(p.SaleEnd, s.now())
}
