package employee

import (
	"context"
	"strings"

	employeeerrors "go-hris-backoffice/internal/employee/errors"
	"go-hris-backoffice/internal/events"
	"go-hris-backoffice/internal/messaging/kafka"
	"go-hris-backoffice/internal/shared/apperror"
	"go-hris-backoffice/internal/shared/contextutil"
	"go-hris-backoffice/internal/shared/timeutil"
	"go-hris-backoffice/internal/tenantstore"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var Collection = tenantstore.Collection{Kind: "employee", NotFound: employeeerrors.ErrEmployeeNotFound}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, tenantID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, tenantID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, tenantID, id string) (EmployeeResponse, error)
	Terminate(ctx context.Context, tenantID, id string, req TerminateEmployeeRequest) (EmployeeResponse, error)
}

type service struct {
	store     tenantstore.Store[Employee]
	publisher kafka.Publisher
	logger    *zap.Logger
}

func NewService(store tenantstore.Store[Employee], publisher kafka.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = kafka.NoopPublisher{}
	}
	return &service{store: store, publisher: publisher, logger: l}
}

func (s *service) Create(ctx context.Context, tenantID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("tenant_id", tenantID),
	)

	if err := tenantstore.CheckTenant(tenantID); err != nil {
		return EmployeeResponse{}, err
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return EmployeeResponse{}, apperror.RequiredField("firstName")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return EmployeeResponse{}, apperror.RequiredField("lastName")
	}

	if strings.TrimSpace(req.HireDate) == "" {
		return EmployeeResponse{}, apperror.RequiredField("hireDate")
	}

	now := timeutil.Now()
	empl := Employee{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		Status:     StatusActive,
		HireDate:   req.HireDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Append(ctx, tenantID, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	kafka.Emit(ctx, s.publisher, s.logger, events.EmployeeLifecycleTopic, events.EmployeeCreated,
		tenantID, "employee", empl.ID, events.EmployeeLifecycleData{
			EmployeeID: empl.ID,
			Status:     empl.Status,
			HireDate:   empl.HireDate,
		})

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("tenant_id", tenantID),
		zap.String("employee_id", empl.ID),
	)
	return mapToResponse(empl), nil
}

func (s *service) GetAll(ctx context.Context, tenantID string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("tenant_id", tenantID))

	emps, err := s.store.List(ctx, tenantID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, tenantID, id string) (EmployeeResponse, error) {
	empl, err := s.store.FindByID(ctx, tenantID, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(empl), nil
}

// Terminate may be repeated; each call overwrites the termination date.
func (s *service) Terminate(ctx context.Context, tenantID, id string, req TerminateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("terminate employee requested",
		zap.String("tenant_id", tenantID),
		zap.String("employee_id", id),
	)

	if err := tenantstore.CheckTenant(tenantID); err != nil {
		return EmployeeResponse{}, err
	}
	if strings.TrimSpace(req.TerminationDate) == "" {
		return EmployeeResponse{}, apperror.RequiredField("terminationDate")
	}
	terminationDate := req.TerminationDate

	empl, err := s.store.Update(ctx, tenantID, id, func(e *Employee) error {
		e.Status = StatusTerminated
		e.TerminationDate = &terminationDate
		e.UpdatedAt = timeutil.Now()
		return nil
	})
	if err != nil {
		if apperror.IsClientError(err) {
			s.logger.Warn("terminate employee rejected", zap.String("employee_id", id), zap.Error(err))
		} else {
			s.logger.Error("terminate employee failed", zap.String("employee_id", id), zap.Error(err))
		}
		return EmployeeResponse{}, err
	}

	kafka.Emit(ctx, s.publisher, s.logger, events.EmployeeLifecycleTopic, events.EmployeeTerminated,
		tenantID, "employee", empl.ID, events.EmployeeLifecycleData{
			EmployeeID:      empl.ID,
			Status:          empl.Status,
			HireDate:        empl.HireDate,
			TerminationDate: empl.TerminationDate,
		})

	s.logger.Info("terminate employee success",
		zap.String("tenant_id", tenantID),
		zap.String("employee_id", empl.ID),
	)
	return mapToResponse(empl), nil
}
