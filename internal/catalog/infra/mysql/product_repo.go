package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/luxestone/storefront/internal/catalog/app"
	"github.com/luxestone/storefront/internal/catalog/domain"
)

type ProductRepo struct {
	db *sqlx.DB
}

func NewProductRepo(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

type productRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Category    string         `db:"category"`
	Price       int64          `db:"price"`
	OldPrice    sql.NullInt64  `db:"old_price"`
	Stock       int            `db:"stock"`
	SaleEnd     sql.NullTime   `db:"sale_end"`
	Sizes       sql.NullString `db:"sizes"`
	Colors      sql.NullString `db:"colors"`
	Images      sql.NullString `db:"images"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r productRow) toDomain() (domain.Product, error) {
	p := domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Stock:       r.Stock,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.OldPrice.Valid {
		p.OldPrice = r.OldPrice.Int64
	}
	if r.SaleEnd.Valid {
		t := r.SaleEnd.Time
		p.SaleEnd = &t
	}
	for _, col := range []struct {
		raw  sql.NullString
		dest *[]string
	}{
		{r.Sizes, &p.Sizes},
		{r.Colors, &p.Colors},
		{r.Images, &p.Images},
	} {
		if !col.raw.Valid || col.raw.String == "" {
			continue
		}
		if err := json.Unmarshal([]byte(col.raw.String), col.dest); err != nil {
			return domain.Product{}, errors.Wrap(err, "decode product list column")
		}
	}
	return p, nil
}

func jsonColumn(values []string) (any, error) {
	if len(values) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, errors.Wrap(err, "encode product list column")
	}
	return string(raw), nil
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	sizes, err := jsonColumn(p.Sizes)
	if err != nil {
		return domain.Product{}, err
	}
	colors, err := jsonColumn(p.Colors)
	if err != nil {
		return domain.Product{}, err
	}
	images, err := jsonColumn(p.Images)
	if err != nil {
		return domain.Product{}, err
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO products (name, description, category, price, old_price, stock, sale_end, sizes, colors, images)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.Category, p.Price, nullInt64(p.OldPrice), p.Stock, p.SaleEnd, sizes, colors, images,
	)
	if err != nil {
		return domain.Product{}, errors.Wrap(err, "insert product")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, errors.Wrap(err, "product insert id")
	}
	return r.Get(ctx, id)
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, errors.Wrap(err, "select product")
	}
	return row.toDomain()
}

func (r *ProductRepo) List(ctx context.Context, category string) ([]domain.Product, error) {
	query := `SELECT * FROM products ORDER BY created_at DESC`
	args := []any{}
	if category != "" {
		query = `SELECT * FROM products WHERE category = ? ORDER BY created_at DESC`
		args = append(args, category)
	}

	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	sizes, err := jsonColumn(p.Sizes)
	if err != nil {
		return domain.Product{}, err
	}
	colors, err := jsonColumn(p.Colors)
	if err != nil {
		return domain.Product{}, err
	}
	images, err := jsonColumn(p.Images)
	if err != nil {
		return domain.Product{}, err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, description = ?, category = ?, price = ?, old_price = ?, sale_end = ?, sizes = ?, colors = ?, images = ?
		WHERE id = ?`,
		p.Name, p.Description, p.Category, p.Price, nullInt64(p.OldPrice), p.SaleEnd, sizes, colors, images, p.ID,
	)
	if err != nil {
		return domain.Product{}, errors.Wrap(err, "update product")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows can also mean an unchanged record; confirm existence.
		if _, err := r.Get(ctx, p.ID); err != nil {
			return domain.Product{}, err
		}
	}
	return r.Get(ctx, p.ID)
}

func (r *ProductRepo) Restock(ctx context.Context, id int64, qty int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET stock = stock + ? WHERE id = ?`, qty, id)
	if err != nil {
		return errors.Wrap(err, "restock product")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return app.ErrProductNotFound
	}
	return nil
}

func nullInt64(v int64) sql.NullInt64 {
	if v <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: v, Valid: true}
}
