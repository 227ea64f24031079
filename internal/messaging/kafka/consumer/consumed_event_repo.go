package consumer

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
)

// ConsumedEventRepository remembers which events were already handled so a
// redelivered message is skipped.
type ConsumedEventRepository interface {
	// MarkConsumed reports false when eventID was seen before.
	MarkConsumed(ctx context.Context, eventID, topic string) (bool, error)
}

type consumedEventRepository struct {
	db *sql.DB
}

func NewConsumedEventRepository(db *sql.DB) ConsumedEventRepository {
	return &consumedEventRepository{db: db}
}

func (r *consumedEventRepository) MarkConsumed(ctx context.Context, eventID, topic string) (bool, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO consumed_events (event_id, topic, consumed_at) VALUES ($1, $2, NOW())`,
		eventID, topic,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type memoryConsumedEventRepository struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemoryConsumedEventRepository() ConsumedEventRepository {
	return &memoryConsumedEventRepository{seen: make(map[string]struct{})}
}

func (r *memoryConsumedEventRepository) MarkConsumed(_ context.Context, eventID, _ string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[eventID]; ok {
		return false, nil
	}
	r.seen[eventID] = struct{}{}
	return true, nil
}
