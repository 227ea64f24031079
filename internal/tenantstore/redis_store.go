package tenantstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultLockTTL        = 5 * time.Second
	defaultLockAttempts   = 20
	defaultLockRetryDelay = 50 * time.Millisecond
)

// releaseLockScript deletes the lock only while it still holds our token, so
// a holder whose TTL ran out cannot free a lock someone else has since taken.
const releaseLockScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// RedisStore keeps each collection as a list of ids (arrival order) and a
// hash of id -> JSON payload.
type RedisStore[T Record] struct {
	rdb        *redis.Client
	col        Collection
	sf         *singleflight.Group
	lockTTL    time.Duration
	attempts   int
	retryDelay time.Duration
	logger     *zap.Logger
}

type RedisOption func(*redisOptions)

type redisOptions struct {
	lockTTL    time.Duration
	attempts   int
	retryDelay time.Duration
	logger     *zap.Logger
}

// WithLockRetry sets how many times Update tries to take a record lock and
// how long it waits between tries.
func WithLockRetry(attempts int, delay time.Duration) RedisOption {
	return func(o *redisOptions) {
		if attempts > 0 {
			o.attempts = attempts
		}
		o.retryDelay = delay
	}
}

func WithLockTTL(ttl time.Duration) RedisOption {
	return func(o *redisOptions) {
		if ttl > 0 {
			o.lockTTL = ttl
		}
	}
}

func WithRedisLogger(logger *zap.Logger) RedisOption {
	return func(o *redisOptions) {
		o.logger = logger
	}
}

func NewRedisStore[T Record](rdb *redis.Client, col Collection, opts ...RedisOption) *RedisStore[T] {
	o := redisOptions{
		lockTTL:    defaultLockTTL,
		attempts:   defaultLockAttempts,
		retryDelay: defaultLockRetryDelay,
		logger:     zap.L(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.L()
	}

	return &RedisStore[T]{
		rdb:        rdb,
		col:        col,
		sf:         &singleflight.Group{},
		lockTTL:    o.lockTTL,
		attempts:   o.attempts,
		retryDelay: o.retryDelay,
		logger:     o.logger.Named("tenantstore.redis").With(zap.String("kind", col.Kind)),
	}
}

func IDsKey(tenantID, kind string) string {
	return fmt.Sprintf("hris:%s:%s:ids", tenantID, kind)
}

func RecordsKey(tenantID, kind string) string {
	return fmt.Sprintf("hris:%s:%s:records", tenantID, kind)
}

func LockKey(tenantID, kind, id string) string {
	return fmt.Sprintf("hris:%s:%s:lock:%s", tenantID, kind, id)
}

func (s *RedisStore[T]) Append(ctx context.Context, tenantID string, rec T) error {
	if err := CheckTenant(tenantID); err != nil {
		return err
	}
	id := rec.GetID()
	if id == "" {
		return ErrEmptyID
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	recordsKey := RecordsKey(tenantID, s.col.Kind)
	exists, err := s.rdb.HExists(ctx, recordsKey, id).Result()
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateRecord
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, recordsKey, id, string(payload))
		pipe.RPush(ctx, IDsKey(tenantID, s.col.Kind), id)
		return nil
	})
	if err != nil {
		s.logger.Error("append record failed",
			zap.String("tenant_id", tenantID),
			zap.String("id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *RedisStore[T]) List(ctx context.Context, tenantID string) ([]T, error) {
	if err := CheckTenant(tenantID); err != nil {
		return nil, err
	}

	key := IDsKey(tenantID, s.col.Kind)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		return s.load(ctx, tenantID)
	})
	if err != nil {
		return nil, err
	}

	shared := v.([]T)
	out := make([]T, len(shared))
	copy(out, shared)
	return out, nil
}

func (s *RedisStore[T]) load(ctx context.Context, tenantID string) ([]T, error) {
	ids, err := s.rdb.LRange(ctx, IDsKey(tenantID, s.col.Kind), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []T{}, nil
	}

	vals, err := s.rdb.HMGet(ctx, RecordsKey(tenantID, s.col.Kind), ids...).Result()
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(vals))
	for i, raw := range vals {
		str, ok := raw.(string)
		if !ok {
			s.logger.Warn("record listed without payload",
				zap.String("tenant_id", tenantID),
				zap.String("id", ids[i]),
			)
			continue
		}
		var rec T
		if err := json.Unmarshal([]byte(str), &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *RedisStore[T]) FindByID(ctx context.Context, tenantID, id string) (T, error) {
	var rec T
	if err := CheckTenant(tenantID); err != nil {
		return rec, err
	}

	raw, err := s.rdb.HGet(ctx, RecordsKey(tenantID, s.col.Kind), id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return rec, s.col.notFound()
		}
		return rec, err
	}

	err = json.Unmarshal([]byte(raw), &rec)
	return rec, err
}

func (s *RedisStore[T]) Update(ctx context.Context, tenantID, id string, fn func(*T) error) (T, error) {
	var zero T
	if err := CheckTenant(tenantID); err != nil {
		return zero, err
	}

	lockKey := LockKey(tenantID, s.col.Kind, id)
	token, err := s.acquire(ctx, lockKey)
	if err != nil {
		return zero, err
	}
	defer s.release(context.WithoutCancel(ctx), lockKey, token)

	recordsKey := RecordsKey(tenantID, s.col.Kind)
	raw, err := s.rdb.HGet(ctx, recordsKey, id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, s.col.notFound()
		}
		return zero, err
	}

	var rec T
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return zero, err
	}
	if err := fn(&rec); err != nil {
		return zero, err
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return zero, err
	}
	if err := s.rdb.HSet(ctx, recordsKey, id, string(payload)).Err(); err != nil {
		return zero, err
	}
	return rec, nil
}

func (s *RedisStore[T]) acquire(ctx context.Context, lockKey string) (string, error) {
	token := uuid.NewString()
	for i := 1; i <= s.attempts; i++ {
		ok, err := s.rdb.SetNX(ctx, lockKey, token, s.lockTTL).Result()
		if err != nil {
			return "", err
		}
		if ok {
			return token, nil
		}

		if i == s.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}

	s.logger.Warn("record lock not acquired", zap.String("key", lockKey), zap.Int("attempts", s.attempts))
	return "", ErrRecordLocked
}

func (s *RedisStore[T]) release(ctx context.Context, lockKey, token string) {
	n, err := s.rdb.Eval(ctx, releaseLockScript, []string{lockKey}, token).Int64()
	if err != nil {
		s.logger.Error("release record lock failed", zap.String("key", lockKey), zap.Error(err))
		return
	}
	if n == 0 {
		s.logger.Warn("record lock expired before release", zap.String("key", lockKey), zap.Duration("ttl", s.lockTTL))
	}
}
