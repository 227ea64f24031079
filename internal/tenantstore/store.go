// Package tenantstore holds one ordered collection of records per
// (tenant, kind) pair. Every feature package owns its own collections and
// never reaches into another's.
package tenantstore

import (
	"context"
	"net/http"
	"strings"

	"go-hris-backoffice/internal/shared/apperror"
)

type Record interface {
	GetID() string
}

// Collection names the kind stored and the error returned when a lookup
// misses.
type Collection struct {
	Kind     string
	NotFound error
}

type Store[T Record] interface {
	// Append adds rec at the end of the tenant's collection.
	Append(ctx context.Context, tenantID string, rec T) error
	// List returns records in insertion order. An unknown tenant yields an
	// empty slice.
	List(ctx context.Context, tenantID string) ([]T, error)
	FindByID(ctx context.Context, tenantID, id string) (T, error)
	// Update applies fn to a copy of the record and stores the copy only if
	// fn succeeds.
	Update(ctx context.Context, tenantID, id string, fn func(*T) error) (T, error)
}

var (
	ErrDuplicateRecord = apperror.New(
		apperror.CodeConflict,
		"record already exists",
		http.StatusConflict,
	)

	ErrRecordLocked = apperror.New(
		apperror.CodeServiceUnavailable,
		"record is being modified, retry later",
		http.StatusServiceUnavailable,
	)

	ErrEmptyID = apperror.New(
		apperror.CodeInvalidInput,
		"record id is required",
		http.StatusBadRequest,
	)
)

// RegistryTenant is the partition used for records that belong to no tenant,
// such as the tenants themselves.
const RegistryTenant = "_registry"

func (c Collection) notFound() error {
	if c.NotFound != nil {
		return c.NotFound
	}
	return apperror.ErrNotFound
}

// CheckTenant rejects a blank tenant id.
func CheckTenant(tenantID string) error {
	if strings.TrimSpace(tenantID) == "" {
		return apperror.ErrTenantRequired
	}
	return nil
}
