package app

import (
	"context"

	"github.com/luxestone/storefront/internal/catalog/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context, category string) ([]domain.Product, error)
	Update(ctx context.Context, p domain.Product) (domain.Product, error)
	Restock(ctx context.Context, id int64, qty int) error
}
