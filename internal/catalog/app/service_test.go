package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxestone/storefront/internal/catalog/domain"
)

type fakeProductRepo struct {
	products map[int64]domain.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]domain.Product), nextID: 1}
}

func (f *fakeProductRepo) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	p.ID = f.nextID
	f.nextID++
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProductRepo) Get(_ context.Context, id int64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) List(_ context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p domain.Product) (domain.Product, error) {
	if _, ok := f.products[p.ID]; !ok {
		return domain.Product{}, ErrProductNotFound
	}
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProductRepo) Restock(_ context.Context, id int64, qty int) error {
	p, ok := f.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.Stock += qty
	f.products[id] = p
	return nil
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeProductRepo())

	t.Run("valid", func(t *testing.T) {
		p, err := svc.CreateProduct(ctx, domain.Product{Name: " Granite Slab ", Price: 1000, Stock: 10})
		require.NoError(t, err)
		assert.Equal(t, "Granite Slab", p.Name)
		assert.NotZero(t, p.ID)
	})

	t.Run("invalid", func(t *testing.T) {
		for name, p := range map[string]domain.Product{
			"blank name":     {Name: "  ", Price: 1000},
			"zero price":     {Name: "Granite Slab", Price: 0},
			"negative stock": {Name: "Granite Slab", Price: 1000, Stock: -1},
		} {
			_, err := svc.CreateProduct(ctx, p)
			assert.ErrorIs(t, err, ErrInvalidInput, name)
		}
	})
}

func TestRestock(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()
	svc := NewService(repo)

	created, err := svc.CreateProduct(ctx, domain.Product{Name: "Granite Slab", Price: 1000, Stock: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Restock(ctx, created.ID, 8))
	p, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)

	assert.ErrorIs(t, svc.Restock(ctx, created.ID, 0), ErrInvalidInput)
	assert.ErrorIs(t, svc.Restock(ctx, 0, 5), ErrInvalidInput)
}

func TestPresentation(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(newFakeProductRepo())
	svc.now = func() time.Time { return now }

	end := now.Add(time.Hour)
	stock, sale := svc.Presentation(domain.Product{Stock: 3, SaleEnd: &end})

	assert.Equal(t, domain.LowStock, stock.Availability)
	assert.Equal(t, domain.SaleActive, sale.State)
	assert.Equal(t, time.Hour, sale.Remaining)
}
