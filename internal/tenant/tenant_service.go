package tenant

import (
	"context"
	"strings"

	"go-hris-backoffice/internal/shared/apperror"
	"go-hris-backoffice/internal/shared/timeutil"
	tenanterrors "go-hris-backoffice/internal/tenant/errors"
	"go-hris-backoffice/internal/tenantstore"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Collection describes the registry's store. Slugs are not unique.
var Collection = tenantstore.Collection{Kind: "tenant", NotFound: tenanterrors.ErrTenantNotFound}

type Service interface {
	Create(ctx context.Context, req CreateTenantRequest) (TenantResponse, error)
	GetAll(ctx context.Context) ([]TenantResponse, error)
	GetByID(ctx context.Context, id string) (TenantResponse, error)
}

type service struct {
	store  tenantstore.Store[Tenant]
	logger *zap.Logger
}

func NewService(store tenantstore.Store[Tenant], logger ...*zap.Logger) Service {
	l := zap.L().Named("tenant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tenant.service")
	}
	return &service{store: store, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateTenantRequest) (TenantResponse, error) {
	s.logger.Debug("create tenant requested", zap.String("slug", req.Slug))

	if strings.TrimSpace(req.Name) == "" {
		return TenantResponse{}, apperror.RequiredField("name")
	}
	if strings.TrimSpace(req.Slug) == "" {
		return TenantResponse{}, apperror.RequiredField("slug")
	}

	t := Tenant{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Slug:      req.Slug,
		CreatedAt: timeutil.Now(),
	}

	if err := s.store.Append(ctx, tenantstore.RegistryTenant, t); err != nil {
		s.logger.Error("create tenant persist failed", zap.Error(err))
		return TenantResponse{}, err
	}

	s.logger.Info("create tenant success", zap.String("tenant_id", t.ID), zap.String("slug", t.Slug))
	return mapToResponse(t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TenantResponse, error) {
	tenants, err := s.store.List(ctx, tenantstore.RegistryTenant)
	if err != nil {
		s.logger.Error("get all tenants failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(tenants), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TenantResponse, error) {
	t, err := s.store.FindByID(ctx, tenantstore.RegistryTenant, id)
	if err != nil {
		return TenantResponse{}, err
	}
	return mapToResponse(t), nil
}
