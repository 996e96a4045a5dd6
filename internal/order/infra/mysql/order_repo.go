package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	notifdomain "github.com/luxestone/storefront/internal/notification/domain"
	"github.com/luxestone/storefront/internal/order/domain"
)

type OrderRepo struct {
	db *sqlx.DB
}

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) execTX(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback also failed: %v", rbErr)
		}
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}

// CreateOrderTx persists the order record and its item snapshots, decrements
// stock per line with a conditional update, and enqueues the order-placed
// notification, all under one transaction. A line whose decrement matches
// zero rows means the shelf ran dry between the availability check and here;
// the whole submission rolls back and the cart stays intact.
func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	var created domain.Order

	err := r.execTX(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO orders (customer_name, email, phone, address, subtotal, shipping_fee, discount,
			                    total_amount, coupon_code, payment_method, transaction_id, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			order.CustomerName, order.Email, order.Phone, order.Address,
			order.Subtotal, order.ShippingFee, order.Discount, order.TotalAmount,
			order.CouponCode, order.PaymentMethod, order.TransactionID, order.Status,
		)
		if err != nil {
			return errors.Wrap(err, "insert order")
		}
		orderID, err := res.LastInsertId()
		if err != nil {
			return errors.Wrap(err, "order insert id")
		}

		items := make([]domain.Item, 0, len(order.Items))
		for i, item := range order.Items {
			itemRes, err := tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, product_id, name, unit_price, quantity, size, color)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				orderID, item.ProductID, item.Name, item.UnitPrice, item.Quantity, item.Size, item.Color,
			)
			if err != nil {
				return errors.Wrapf(err, "insert order item %d", i)
			}
			itemID, err := itemRes.LastInsertId()
			if err != nil {
				return errors.Wrapf(err, "order item %d insert id", i)
			}

			decRes, err := tx.ExecContext(ctx,
				`UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?`,
				item.Quantity, item.ProductID, item.Quantity,
			)
			if err != nil {
				return errors.Wrapf(err, "decrement stock for product %d", item.ProductID)
			}
			if n, _ := decRes.RowsAffected(); n == 0 {
				return domain.ErrInsufficientStock
			}

			item.ID = itemID
			items = append(items, item)
		}

		created = order
		created.ID = orderID
		created.Items = items
		created.CreatedAt = time.Now().UTC()

		return r.enqueueOrderPlaced(ctx, tx, created)
	})
	if err != nil {
		return domain.Order{}, err
	}

	// Reload so callers see exactly what a later fetch would return.
	return r.Get(ctx, created.ID)
}

func (r *OrderRepo) enqueueOrderPlaced(ctx context.Context, tx *sqlx.Tx, order domain.Order) error {
	event := notifdomain.OrderPlaced{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		Email:         order.Email,
		Phone:         order.Phone,
		Address:       order.Address,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, notifdomain.OrderLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.UnitPrice,
		})
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode order placed event")
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO outbox_events (id, kind, payload) VALUES (?, ?, ?)`,
		uuid.NewString(), notifdomain.KindOrderPlaced, payload,
	)
	return errors.Wrap(err, "enqueue order placed event")
}

type orderRow struct {
	ID            int64     `db:"id"`
	CustomerName  string    `db:"customer_name"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	Address       string    `db:"address"`
	Subtotal      int64     `db:"subtotal"`
	ShippingFee   int64     `db:"shipping_fee"`
	Discount      int64     `db:"discount"`
	TotalAmount   int64     `db:"total_amount"`
	CouponCode    string    `db:"coupon_code"`
	PaymentMethod string    `db:"payment_method"`
	TransactionID string    `db:"transaction_id"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

type orderItemRow struct {
	ID        int64  `db:"id"`
	OrderID   int64  `db:"order_id"`
	ProductID int64  `db:"product_id"`
	Name      string `db:"name"`
	UnitPrice int64  `db:"unit_price"`
	Quantity  int    `db:"quantity"`
	Size      string `db:"size"`
	Color     string `db:"color"`
}

func (r orderRow) toDomain() domain.Order {
	return domain.Order{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		Subtotal:      r.Subtotal,
		ShippingFee:   r.ShippingFee,
		Discount:      r.Discount,
		TotalAmount:   r.TotalAmount,
		CouponCode:    r.CouponCode,
		PaymentMethod: r.PaymentMethod,
		TransactionID: r.TransactionID,
		Status:        domain.Status(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

func (r *OrderRepo) Get(ctx context.Context, id int64) (domain.Order, error) {
	var row orderRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM orders WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, errors.Wrap(err, "select order")
	}

	order := row.toDomain()
	items, err := r.itemsFor(ctx, []int64{id})
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items[id]
	return order, nil
}

func (r *OrderRepo) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	var rows []orderRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM orders WHERE email = ? ORDER BY created_at DESC, id DESC`, email)
	if err != nil {
		return nil, errors.Wrap(err, "list orders by email")
	}
	return r.attachItems(ctx, rows)
}

func (r *OrderRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	var rows []orderRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return r.attachItems(ctx, rows)
}

func (r *OrderRepo) attachItems(ctx context.Context, rows []orderRow) ([]domain.Order, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order := row.toDomain()
		order.Items = items[row.ID]
		out = append(out, order)
	}
	return out, nil
}

func (r *OrderRepo) itemsFor(ctx context.Context, orderIDs []int64) (map[int64][]domain.Item, error) {
	query, args, err := sqlx.In(
		`SELECT * FROM order_items WHERE order_id IN (?) ORDER BY id`, orderIDs)
	if err != nil {
		return nil, errors.Wrap(err, "build order items query")
	}

	var rows []orderItemRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "select order items")
	}

	out := make(map[int64][]domain.Item, len(orderIDs))
	for _, row := range rows {
		out[row.OrderID] = append(out[row.OrderID], domain.Item{
			ID:        row.ID,
			ProductID: row.ProductID,
			Name:      row.Name,
			UnitPrice: row.UnitPrice,
			Quantity:  row.Quantity,
			Size:      row.Size,
			Color:     row.Color,
		})
	}
	return out, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return errors.Wrap(err, "update order status")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	err := r.execTX(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, id); err != nil {
			return errors.Wrap(err, "delete order items")
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
		if err != nil {
			return errors.Wrap(err, "delete order")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.ErrOrderNotFound
		}
		return nil
	})
	return err
}
