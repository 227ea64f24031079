package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	// OutboxStatusDead rows are never claimed again.
	OutboxStatusDead = "dead"

	MaxOutboxAttempts = 8

	maxErrorMessageLen = 500
	baseRetryDelay     = 5 * time.Second
	maxRetryDelay      = 5 * time.Minute
)

type OutboxEvent struct {
	ID            string
	TenantID      string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	CreatedAt     time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	// ClaimPending leases up to limit due rows so concurrent relays skip them
	// until the lease runs out.
	ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, event OutboxEvent, reason string) error
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	const query = `
INSERT INTO outbox_events
	(id, tenant_id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.execer().ExecContext(ctx, query,
		event.ID, event.TenantID, event.RequestID, event.AggregateType,
		event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

func (r *outboxRepository) ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]OutboxEvent, error) {
	const query = `
WITH due AS (
	SELECT id FROM outbox_events
	WHERE status IN ($1, $2)
		AND (next_retry_at IS NULL OR next_retry_at <= NOW())
	ORDER BY created_at
	LIMIT $3
	FOR UPDATE SKIP LOCKED
)
UPDATE outbox_events o
SET next_retry_at = NOW() + make_interval(secs => $4), updated_at = NOW()
FROM due
WHERE o.id = due.id
RETURNING o.id, o.tenant_id, o.request_id, o.aggregate_type, o.aggregate_id,
	o.event_type, o.topic, o.payload, o.status, o.retry_count, o.created_at`

	rows, err := r.db.QueryContext(ctx, query,
		OutboxStatusPending, OutboxStatusFailed, limit, lease.Seconds())
	if err != nil {
		return nil, fmt.Errorf("claim outbox events: %w", err)
	}
	defer rows.Close()

	var claimed []OutboxEvent
	for rows.Next() {
		var e OutboxEvent
		err := rows.Scan(&e.ID, &e.TenantID, &e.RequestID, &e.AggregateType, &e.AggregateID,
			&e.EventType, &e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		claimed = append(claimed, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// RETURNING carries no order.
	sort.SliceStable(claimed, func(i, j int) bool {
		return claimed[i].CreatedAt.Before(claimed[j].CreatedAt)
	})
	return claimed, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	const query = `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, next_retry_at = NULL, updated_at = NOW()
WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusSent)
	return err
}

// MarkFailed records one more failed attempt. The row is retried after
// RetryDelay, or parked as dead once MaxOutboxAttempts is reached.
func (r *outboxRepository) MarkFailed(ctx context.Context, event OutboxEvent, reason string) error {
	attempt := event.RetryCount + 1
	status := OutboxStatusFailed
	if attempt >= MaxOutboxAttempts {
		status = OutboxStatusDead
	}

	const query = `
UPDATE outbox_events
SET status = $2, retry_count = $3, error_message = $4,
	next_retry_at = NOW() + make_interval(secs => $5), updated_at = NOW()
WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query,
		event.ID, status, attempt, truncate(reason, maxErrorMessageLen), RetryDelay(attempt).Seconds())
	return err
}

func (r *outboxRepository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// RetryDelay doubles from 5s per attempt, capped at 5m.
func RetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return baseRetryDelay
	}
	d := baseRetryDelay
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return d
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

var (
	errOutboxID      = errors.New("outbox id is required")
	errOutboxTenant  = errors.New("outbox tenant id is required")
	errOutboxTopic   = errors.New("outbox topic is required")
	errOutboxPayload = errors.New("outbox payload is required")
)

// ValidateOutboxEvent guards inserts; only pending rows may be created.
func ValidateOutboxEvent(event OutboxEvent) error {
	switch {
	case event.ID == "":
		return errOutboxID
	case event.TenantID == "":
		return errOutboxTenant
	case event.Topic == "":
		return errOutboxTopic
	case len(event.Payload) == 0:
		return errOutboxPayload
	case event.Status != OutboxStatusPending:
		return fmt.Errorf("invalid outbox status: %q", event.Status)
	}
	return nil
}
