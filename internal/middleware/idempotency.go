package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-hris-backoffice/internal/shared/apperror"
	"go-hris-backoffice/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const IdempotencyHeader = "Idempotency-Key"

type IdempotencyConfig struct {
	LockTTL     time.Duration
	ResponseTTL time.Duration
}

func (c IdempotencyConfig) withDefaults() IdempotencyConfig {
	if c.LockTTL <= 0 {
		c.LockTTL = 30 * time.Second
	}
	if c.ResponseTTL <= 0 {
		c.ResponseTTL = 24 * time.Hour
	}
	return c
}

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// bodyRecorder keeps a copy of everything the handler writes.
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func IdempotencyKeys(tenantID, path, key string) (cacheKey, lockKey string) {
	cacheKey = fmt.Sprintf("idemp:%s:%s:%s", tenantID, path, key)
	return cacheKey, cacheKey + ":lock"
}

// Idempotency replays the first successful response of a POST carrying an
// Idempotency-Key. Keys are scoped per tenant and route. A second request
// arriving while the first is still running gets 409.
func Idempotency(rdb redis.UniversalClient, cfg IdempotencyConfig, logger *zap.Logger) gin.HandlerFunc {
	cfg = cfg.withDefaults()
	log := logger.Named("idempotency")

	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey, lockKey := IdempotencyKeys(c.GetString("tenant_id"), c.FullPath(), idempKey)

		val, err := rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var cached cachedResponse
			if err := json.Unmarshal(val, &cached); err == nil {
				c.Header("Idempotent-Replayed", "true")
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				c.Abort()
				return
			}
			log.Warn("idempotency cache entry unreadable", zap.String("key", cacheKey))
		} else if !errors.Is(err, redis.Nil) {
			log.Error("idempotency cache read failed", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", cfg.LockTTL).Result()
		if err != nil {
			log.Error("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				"A request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}
		defer rdb.Del(ctx, lockKey)

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		payload, err := json.Marshal(cachedResponse{Status: status, Body: rec.body.Bytes()})
		if err != nil {
			return
		}
		if err := rdb.Set(ctx, cacheKey, payload, cfg.ResponseTTL).Err(); err != nil {
			log.Error("idempotency cache write failed", zap.Error(err))
		}
	}
}
