package bootstrap_test

import (
	"context"
	"testing"

	"go-hris-backoffice/internal/bootstrap"
	"go-hris-backoffice/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	audit.Log(ctx, bootstrap.AuditLog{
		Action:   "EVENT_CONSUMED",
		Message:  "leave.status_changed",
		TenantID: "t1",
		Meta:     map[string]any{"topic": "hr.leave.status.v1"},
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "audit", entries[0].LoggerName)

	fields := entries[0].ContextMap()
	assert.Equal(t, "EVENT_CONSUMED", fields["action"])
	assert.Equal(t, "t1", fields["tenant_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.NotEmpty(t, fields["timestamp"])
}
