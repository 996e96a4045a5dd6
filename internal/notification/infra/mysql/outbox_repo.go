package mysql

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/luxestone/storefront/internal/notification/domain"
)

type OutboxRepo struct {
	db *sqlx.DB
}

func NewOutboxRepo(db *sqlx.DB) *OutboxRepo {
	return &OutboxRepo{db: db}
}

type outboxRow struct {
	ID        string     `db:"id"`
	Kind      string     `db:"kind"`
	Payload   []byte     `db:"payload"`
	CreatedAt time.Time  `db:"created_at"`
	SentAt    *time.Time `db:"sent_at"`
}

func (r *OutboxRepo) ListPending(ctx context.Context, limit int) ([]domain.Envelope, error) {
	var rows []outboxRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM outbox_events WHERE sent_at IS NULL ORDER BY created_at, id LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list pending outbox events")
	}

	out := make([]domain.Envelope, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Envelope{
			ID:        row.ID,
			Kind:      row.Kind,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *OutboxRepo) MarkSent(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE outbox_events SET sent_at = NOW() WHERE id = ?`, id)
	return errors.Wrap(err, "mark outbox event sent")
}
