package tenantstore

import (
	"context"
	"encoding/json"
	"sync"
)

type memoryBucket struct {
	ids     []string
	records map[string][]byte
}

// MemoryStore keeps encoded records in process memory behind one lock.
// Records go through JSON on the way in and out, so callers never share
// memory with the stored state.
type MemoryStore[T Record] struct {
	mu      sync.RWMutex
	col     Collection
	buckets map[string]*memoryBucket
}

func NewMemoryStore[T Record](col Collection) *MemoryStore[T] {
	return &MemoryStore[T]{
		col:     col,
		buckets: make(map[string]*memoryBucket),
	}
}

func (s *MemoryStore[T]) Append(_ context.Context, tenantID string, rec T) error {
	if err := CheckTenant(tenantID); err != nil {
		return err
	}
	if rec.GetID() == "" {
		return ErrEmptyID
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[tenantID]
	if !ok {
		b = &memoryBucket{records: make(map[string][]byte)}
		s.buckets[tenantID] = b
	}
	if _, exists := b.records[rec.GetID()]; exists {
		return ErrDuplicateRecord
	}

	b.ids = append(b.ids, rec.GetID())
	b.records[rec.GetID()] = payload
	return nil
}

func (s *MemoryStore[T]) List(_ context.Context, tenantID string) ([]T, error) {
	if err := CheckTenant(tenantID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.buckets[tenantID]
	if !ok {
		return []T{}, nil
	}

	out := make([]T, 0, len(b.ids))
	for _, id := range b.ids {
		var rec T
		if err := json.Unmarshal(b.records[id], &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *MemoryStore[T]) FindByID(_ context.Context, tenantID, id string) (T, error) {
	var rec T
	if err := CheckTenant(tenantID); err != nil {
		return rec, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.lookup(tenantID, id)
	if !ok {
		return rec, s.col.notFound()
	}
	err := json.Unmarshal(payload, &rec)
	return rec, err
}

func (s *MemoryStore[T]) Update(_ context.Context, tenantID, id string, fn func(*T) error) (T, error) {
	var rec T
	if err := CheckTenant(tenantID); err != nil {
		return rec, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok := s.lookup(tenantID, id)
	if !ok {
		return rec, s.col.notFound()
	}
	if err := json.Unmarshal(payload, &rec); err != nil {
		return rec, err
	}
	if err := fn(&rec); err != nil {
		var zero T
		return zero, err
	}

	next, err := json.Marshal(rec)
	if err != nil {
		var zero T
		return zero, err
	}
	s.buckets[tenantID].records[id] = next
	return rec, nil
}

func (s *MemoryStore[T]) lookup(tenantID, id string) ([]byte, bool) {
	b, ok := s.buckets[tenantID]
	if !ok {
		return nil, false
	}
	payload, ok := b.records[id]
	return payload, ok
}
