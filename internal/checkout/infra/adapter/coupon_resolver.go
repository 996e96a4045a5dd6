package adapter

import (
	"context"

	couponapp "github.com/luxestone/storefront/internal/coupon/app"
)

type CouponServiceResolver struct {
	svc *couponapp.Service
}

func NewCouponServiceResolver(svc *couponapp.Service) *CouponServiceResolver {
	return &CouponServiceResolver{svc: svc}
}

func (r *CouponServiceResolver) Resolve(ctx context.Context, code string) (int, error) {
	return r.svc.Validate(ctx, code)
}
