package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBatchSize = 50

// Relay drains the outbox on an interval and publishes each row. Rows are
// marked sent only after a successful publish, so a broker outage means the
// same event goes out again later: delivery is at-least-once, and a failed
// publish never surfaces to the shopper who placed the order.
type Relay struct {
	outbox   OutboxRepo
	pub      Publisher
	log      *logrus.Entry
	interval time.Duration
}

func NewRelay(outbox OutboxRepo, pub Publisher, log *logrus.Entry, interval time.Duration) *Relay {
	return &Relay{
		outbox:   outbox,
		pub:      pub,
		log:      log,
		interval: interval,
	}
}

func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Drain(ctx)
		}
	}
}

// Drain publishes one batch of pending rows.
func (r *Relay) Drain(ctx context.Context) {
	pending, err := r.outbox.ListPending(ctx, defaultBatchSize)
	if err != nil {
		r.log.WithError(err).Error("outbox list failed")
		return
	}

	for _, env := range pending {
		if err := r.pub.Publish(ctx, env); err != nil {
			r.log.WithError(err).WithField("event_id", env.ID).Warn("publish failed, will retry")
			continue
		}
		if err := r.outbox.MarkSent(ctx, env.ID); err != nil {
			// The event may be published twice; consumers tolerate that.
			r.log.WithError(err).WithField("event_id", env.ID).Error("mark sent failed")
		}
	}
}
