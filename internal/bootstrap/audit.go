package bootstrap

import "context"

type AuditLog struct {
	Action   string
	Message  string
	TenantID string
	Meta     map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
