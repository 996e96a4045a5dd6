package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/luxestone/storefront/internal/cart/app"
	"github.com/luxestone/storefront/internal/cart/domain"
)

type CartRepo struct {
	db *sqlx.DB
}

func NewCartRepo(db *sqlx.DB) *CartRepo {
	return &CartRepo{db: db}
}

type cartRow struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type lineRow struct {
	ID        string    `db:"id"`
	CartID    string    `db:"cart_id"`
	ProductID int64     `db:"product_id"`
	Name      string    `db:"name"`
	UnitPrice int64     `db:"unit_price"`
	Quantity  int       `db:"quantity"`
	Size      string    `db:"size"`
	Color     string    `db:"color"`
	AddedAt   time.Time `db:"added_at"`
}

func (r *CartRepo) Get(ctx context.Context, cartID string) (domain.Cart, error) {
	var row cartRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM carts WHERE id = ?`, cartID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cart{}, app.ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, errors.Wrap(err, "select cart")
	}

	var lines []lineRow
	err = r.db.SelectContext(ctx, &lines,
		`SELECT * FROM cart_lines WHERE cart_id = ? ORDER BY added_at, id`, cartID)
	if err != nil {
		return domain.Cart{}, errors.Wrap(err, "select cart lines")
	}

	cart := domain.Cart{ID: row.ID, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}
	for _, l := range lines {
		cart.Lines = append(cart.Lines, domain.Line{
			ID:        l.ID,
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Size:      l.Size,
			Color:     l.Color,
			AddedAt:   l.AddedAt,
		})
	}
	return cart, nil
}

func (r *CartRepo) Create(ctx context.Context, cartID string) (domain.Cart, error) {
	_, err := r.db.ExecContext(ctx, `INSERT INTO carts (id) VALUES (?)`, cartID)
	if err != nil {
		return domain.Cart{}, errors.Wrap(err, "insert cart")
	}
	return r.Get(ctx, cartID)
}

func (r *CartRepo) InsertLine(ctx context.Context, cartID string, line domain.Line) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_lines (id, cart_id, product_id, name, unit_price, quantity, size, color, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		line.ID, cartID, line.ProductID, line.Name, line.UnitPrice, line.Quantity, line.Size, line.Color, line.AddedAt,
	)
	return errors.Wrap(err, "insert cart line")
}

func (r *CartRepo) IncrementLine(ctx context.Context, lineID string, by int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cart_lines SET quantity = quantity + ? WHERE id = ?`, by, lineID)
	if err != nil {
		return errors.Wrap(err, "increment cart line")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return app.ErrLineNotFound
	}
	return nil
}

func (r *CartRepo) SetLineQuantity(ctx context.Context, lineID string, qty int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE cart_lines SET quantity = ? WHERE id = ?`, qty, lineID)
	return errors.Wrap(err, "set cart line quantity")
}

func (r *CartRepo) RemoveLine(ctx context.Context, cartID, lineID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_lines WHERE id = ? AND cart_id = ?`, lineID, cartID)
	return errors.Wrap(err, "remove cart line")
}

func (r *CartRepo) Clear(ctx context.Context, cartID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_lines WHERE cart_id = ?`, cartID)
	return errors.Wrap(err, "clear cart")
}
