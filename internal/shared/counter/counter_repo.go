package counter

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

type Repository interface {
	// GetNextValue returns the next value of the (tenant, counter) sequence,
	// starting at 1.
	GetNextValue(ctx context.Context, tenantID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, tenantID string, counterType string) (int64, error) {
	var nextValue int64

	// single atomic upsert so concurrent writers never share a value
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO tenant_counters (tenant_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (tenant_id, counter_type) DO UPDATE
		SET last_value = tenant_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, tenantID, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

type memoryRepository struct {
	mu     sync.Mutex
	values map[string]int64
}

// NewMemoryRepository keeps sequences in process memory.
func NewMemoryRepository() Repository {
	return &memoryRepository{values: make(map[string]int64)}
}

func (r *memoryRepository) GetNextValue(_ context.Context, tenantID string, counterType string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := tenantID + "\x00" + counterType
	r.values[key]++
	return r.values[key], nil
}
