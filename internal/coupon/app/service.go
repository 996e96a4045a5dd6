package app

import (
	"context"
	"errors"

	"github.com/luxestone/storefront/internal/coupon/domain"
)

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrInvalidCoupon  = errors.New("invalid coupon")
	ErrDuplicateCode  = errors.New("coupon code already exists")
)

type Service struct {
	repo CouponRepo
}

func NewService(repo CouponRepo) *Service {
	return &Service{repo: repo}
}

// Validate resolves a shopper-typed code against the active coupons and
// returns the discount percent. A deactivated code is indistinguishable from
// one that never existed.
func (s *Service) Validate(ctx context.Context, code string) (int, error) {
	normalized := domain.NormalizeCode(code)
	if normalized == "" {
		return 0, ErrCouponNotFound
	}
	coupon, err := s.repo.FindActiveByCode(ctx, normalized)
	if err != nil {
		return 0, err
	}
	return coupon.DiscountPercent, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Coupon, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, code string, percent int) (domain.Coupon, error) {
	normalized := domain.NormalizeCode(code)
	if normalized == "" || !domain.ValidPercent(percent) {
		return domain.Coupon{}, ErrInvalidCoupon
	}
	return s.repo.Create(ctx, domain.Coupon{
		Code:            normalized,
		DiscountPercent: percent,
		Active:          true,
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCoupon
	}
	return s.repo.Delete(ctx, id)
}
