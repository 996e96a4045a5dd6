package app

import (
	"context"

	"github.com/luxestone/storefront/internal/coupon/domain"
)

type CouponRepo interface {
	FindActiveByCode(ctx context.Context, code string) (domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	Create(ctx context.Context, c domain.Coupon) (domain.Coupon, error)
	Delete(ctx context.Context, id int64) error
}
