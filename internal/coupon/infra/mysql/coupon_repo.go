package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/luxestone/storefront/internal/coupon/app"
	"github.com/luxestone/storefront/internal/coupon/domain"
)

type CouponRepo struct {
	db *sqlx.DB
}

func NewCouponRepo(db *sqlx.DB) *CouponRepo {
	return &CouponRepo{db: db}
}

type couponRow struct {
	ID              int64     `db:"id"`
	Code            string    `db:"code"`
	DiscountPercent int       `db:"discount_percent"`
	Active          bool      `db:"active"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r couponRow) toDomain() domain.Coupon {
	return domain.Coupon{
		ID:              r.ID,
		Code:            r.Code,
		DiscountPercent: r.DiscountPercent,
		Active:          r.Active,
		CreatedAt:       r.CreatedAt,
	}
}

func (r *CouponRepo) FindActiveByCode(ctx context.Context, code string) (domain.Coupon, error) {
	var row couponRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM coupons WHERE code = ? AND active = TRUE`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coupon{}, app.ErrCouponNotFound
	}
	if err != nil {
		return domain.Coupon{}, errors.Wrap(err, "select coupon")
	}
	return row.toDomain(), nil
}

func (r *CouponRepo) List(ctx context.Context) ([]domain.Coupon, error) {
	var rows []couponRow
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM coupons ORDER BY id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "list coupons")
	}
	out := make([]domain.Coupon, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CouponRepo) Create(ctx context.Context, c domain.Coupon) (domain.Coupon, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO coupons (code, discount_percent, active) VALUES (?, ?, ?)`,
		c.Code, c.DiscountPercent, c.Active)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.Coupon{}, app.ErrDuplicateCode
		}
		return domain.Coupon{}, errors.Wrap(err, "insert coupon")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Coupon{}, errors.Wrap(err, "coupon insert id")
	}

	var row couponRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM coupons WHERE id = ?`, id); err != nil {
		return domain.Coupon{}, errors.Wrap(err, "reload coupon")
	}
	return row.toDomain(), nil
}

func (r *CouponRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete coupon")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return app.ErrCouponNotFound
	}
	return nil
}

func isDuplicateEntry(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate entry")
}
