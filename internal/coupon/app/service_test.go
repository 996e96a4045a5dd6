package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxestone/storefront/internal/coupon/domain"
)

type fakeCouponRepo struct {
	byCode map[string]domain.Coupon
	nextID int64
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{byCode: make(map[string]domain.Coupon), nextID: 1}
}

func (f *fakeCouponRepo) FindActiveByCode(_ context.Context, code string) (domain.Coupon, error) {
	c, ok := f.byCode[code]
	if !ok || !c.Active {
		return domain.Coupon{}, ErrCouponNotFound
	}
	return c, nil
}

func (f *fakeCouponRepo) List(_ context.Context) ([]domain.Coupon, error) {
	out := make([]domain.Coupon, 0, len(f.byCode))
	for _, c := range f.byCode {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCouponRepo) Create(_ context.Context, c domain.Coupon) (domain.Coupon, error) {
	if _, ok := f.byCode[c.Code]; ok {
		return domain.Coupon{}, ErrDuplicateCode
	}
	c.ID = f.nextID
	f.nextID++
	f.byCode[c.Code] = c
	return c, nil
}

func (f *fakeCouponRepo) Delete(_ context.Context, id int64) error {
	for code, c := range f.byCode {
		if c.ID == id {
			delete(f.byCode, code)
			return nil
		}
	}
	return ErrCouponNotFound
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("code lookup is case insensitive", func(t *testing.T) {
		repo := newFakeCouponRepo()
		svc := NewService(repo)
		_, err := svc.Create(ctx, "SAVE10", 10)
		require.NoError(t, err)

		percent, err := svc.Validate(ctx, "  save10 ")
		require.NoError(t, err)
		assert.Equal(t, 10, percent)
	})

	t.Run("blank code", func(t *testing.T) {
		svc := NewService(newFakeCouponRepo())
		_, err := svc.Validate(ctx, "   ")
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc := NewService(newFakeCouponRepo())
		_, err := svc.Validate(ctx, "NOPE")
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})

	t.Run("deactivated code looks unknown", func(t *testing.T) {
		repo := newFakeCouponRepo()
		repo.byCode["OLD"] = domain.Coupon{ID: 9, Code: "OLD", DiscountPercent: 20, Active: false}
		svc := NewService(repo)

		_, err := svc.Validate(ctx, "OLD")
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})
}

func TestCreateCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the normalized code", func(t *testing.T) {
		svc := NewService(newFakeCouponRepo())
		coupon, err := svc.Create(ctx, " welcome5 ", 5)
		require.NoError(t, err)
		assert.Equal(t, "WELCOME5", coupon.Code)
		assert.True(t, coupon.Active)
	})

	t.Run("rejects bad percent", func(t *testing.T) {
		svc := NewService(newFakeCouponRepo())
		for _, percent := range []int{0, -5, 101} {
			_, err := svc.Create(ctx, "SAVE", percent)
			assert.ErrorIs(t, err, ErrInvalidCoupon, "percent=%d", percent)
		}
	})

	t.Run("rejects empty code", func(t *testing.T) {
		svc := NewService(newFakeCouponRepo())
		_, err := svc.Create(ctx, "  ", 10)
		assert.ErrorIs(t, err, ErrInvalidCoupon)
	})

	t.Run("duplicate code", func(t *testing.T) {
		svc := NewService(newFakeCouponRepo())
		_, err := svc.Create(ctx, "SAVE10", 10)
		require.NoError(t, err)
		_, err = svc.Create(ctx, "save10", 15)
		assert.ErrorIs(t, err, ErrDuplicateCode)
	})
}

func TestDeleteCoupon(t *testing.T) {
	svc := NewService(newFakeCouponRepo())
	assert.ErrorIs(t, svc.Delete(context.Background(), 0), ErrInvalidCoupon)
}
