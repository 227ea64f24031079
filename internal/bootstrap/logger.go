package bootstrap

import (
	"strings"

	"go.uber.org/zap"
)

// NewLogger returns a production logger for APP_ENV=production and a
// development logger otherwise.
func NewLogger(env string) (*zap.Logger, error) {
	if strings.EqualFold(strings.TrimSpace(env), "production") {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
