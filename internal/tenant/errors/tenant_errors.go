package tenanterrors

import (
	"go-hris-backoffice/internal/shared/apperror"
	"net/http"
)

var (
	ErrTenantNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tenant not found",
		http.StatusNotFound,
	)
)
