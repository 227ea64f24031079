package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hris-backoffice/internal/middleware"
	"go-hris-backoffice/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireTenant(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequireTenant())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("tenant_id")+"|"+contextutil.GetTenantID(c.Request.Context()))
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "TENANT_REQUIRED")
	})

	t.Run("blank header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.TenantHeader, "   ")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("propagates tenant", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.TenantHeader, "acme")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "acme|acme", w.Body.String())
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "rid-1")
	r.ServeHTTP(w, req)
	assert.Equal(t, "rid-1", w.Body.String())
	assert.Equal(t, "rid-1", w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
}

func TestRateLimitByTenant(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequireTenant(), middleware.RateLimitByTenant(0.001, 1))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(tenant string) int {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.TenantHeader, tenant)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusTooManyRequests, call("a"))
	assert.Equal(t, http.StatusOK, call("b"))
}

func TestIdempotency(t *testing.T) {
	cacheKey, lockKey := middleware.IdempotencyKeys("t1", "/things", "key-1")
	cfg := middleware.IdempotencyConfig{LockTTL: 10 * time.Second, ResponseTTL: time.Hour}

	setup := func(t *testing.T, calls *int) (*gin.Engine, redismock.ClientMock) {
		db, mock := redismock.NewClientMock()
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set("tenant_id", "t1")
			c.Next()
		}, middleware.Idempotency(db, cfg, zap.NewNop()))
		r.POST("/things", func(c *gin.Context) {
			*calls++
			c.JSON(http.StatusCreated, gin.H{"id": "x"})
		})
		return r, mock
	}

	post := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/things", strings.NewReader(`{}`))
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("first request is cached", func(t *testing.T) {
		calls := 0
		r, mock := setup(t, &calls)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", cfg.LockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"status":201,"body":{"id":"x"}}`), cfg.ResponseTTL).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(r)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay skips handler", func(t *testing.T) {
		calls := 0
		r, mock := setup(t, &calls)

		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"id":"x"}}`)

		w := post(r)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"x"}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 0, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in flight duplicate", func(t *testing.T) {
		calls := 0
		r, mock := setup(t, &calls)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", cfg.LockTTL).SetVal(false)

		w := post(r)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key passes through", func(t *testing.T) {
		calls := 0
		r, mock := setup(t, &calls)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/things", strings.NewReader(`{}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
