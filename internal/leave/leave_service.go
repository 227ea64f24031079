package leave

import (
	"context"
	"strings"

	"go-hris-backoffice/internal/events"
	leaveerrors "go-hris-backoffice/internal/leave/errors"
	"go-hris-backoffice/internal/messaging/kafka"
	"go-hris-backoffice/internal/shared/apperror"
	"go-hris-backoffice/internal/shared/contextutil"
	"go-hris-backoffice/internal/shared/timeutil"
	"go-hris-backoffice/internal/tenantstore"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var Collection = tenantstore.Collection{Kind: "leave", NotFound: leaveerrors.ErrLeaveNotFound}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, tenantID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, tenantID string) ([]LeaveResponse, error)
	GetByID(ctx context.Context, tenantID, id string) (LeaveResponse, error)
	Approve(ctx context.Context, tenantID, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	Reject(ctx context.Context, tenantID, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, tenantID, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
}

type service struct {
	store     tenantstore.Store[Leave]
	publisher kafka.Publisher
	logger    *zap.Logger
}

func NewService(store tenantstore.Store[Leave], publisher kafka.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if publisher == nil {
		publisher = kafka.NoopPublisher{}
	}
	return &service{store: store, publisher: publisher, logger: l}
}

func (s *service) Create(ctx context.Context, tenantID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("tenant_id", tenantID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	if err := tenantstore.CheckTenant(tenantID); err != nil {
		return LeaveResponse{}, err
	}
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	startDate, err := timeutil.ParseInstant(req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := timeutil.ParseInstant(req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		s.logger.Warn("create leave invalid range",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	now := timeutil.Now()
	l := Leave{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		Status:     StatusPending,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       *req.Days,
		Note:       req.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Append(ctx, tenantID, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID),
		zap.String("tenant_id", tenantID),
		zap.String("employee_id", l.EmployeeID),
	)
	return mapToResponse(l), nil
}

func validateCreateRequest(req CreateLeaveRequest) error {
	if strings.TrimSpace(req.EmployeeID) == "" {
		return apperror.RequiredField("employeeId")
	}
	if !IsValidType(req.Type) {
		return leaveerrors.ErrInvalidLeaveType
	}
	if req.Days == nil {
		return apperror.RequiredField("days")
	}
	return nil
}

func (s *service) GetAll(ctx context.Context, tenantID string) ([]LeaveResponse, error) {
	leaves, err := s.store.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, tenantID, id string) (LeaveResponse, error) {
	l, err := s.store.FindByID(ctx, tenantID, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(l), nil
}

func (s *service) Approve(ctx context.Context, tenantID, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error) {
	return s.decide(ctx, tenantID, id, StatusApproved, req)
}

func (s *service) Reject(ctx context.Context, tenantID, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error) {
	return s.decide(ctx, tenantID, id, StatusRejected, req)
}

func (s *service) decide(ctx context.Context, tenantID, id, to string, req UpdateLeaveStatusRequest) (LeaveResponse, error) {
	s.logger.Debug("leave decision requested",
		zap.String("tenant_id", tenantID),
		zap.String("leave_id", id),
		zap.String("target_status", to),
	)

	var from string
	l, err := s.store.Update(ctx, tenantID, id, func(l *Leave) error {
		from = l.Status
		return l.decide(to, req.ApproverID, req.Note, timeutil.Now())
	})
	if err != nil {
		s.logTransitionError(id, to, err)
		return LeaveResponse{}, err
	}

	s.emitStatusChanged(ctx, l, from)
	s.logger.Info("leave status changed",
		zap.String("leave_id", l.ID),
		zap.String("from", from),
		zap.String("to", l.Status),
	)
	return mapToResponse(l), nil
}

// Cancel on an already cancelled request returns it unchanged.
func (s *service) Cancel(ctx context.Context, tenantID, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error) {
	s.logger.Debug("cancel leave requested",
		zap.String("tenant_id", tenantID),
		zap.String("leave_id", id),
	)

	current, err := s.store.FindByID(ctx, tenantID, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if current.Status == StatusCancelled {
		return mapToResponse(current), nil
	}

	var from string
	changed := false
	l, err := s.store.Update(ctx, tenantID, id, func(l *Leave) error {
		from = l.Status
		changed = l.cancel(req.Note, timeutil.Now())
		return nil
	})
	if err != nil {
		s.logTransitionError(id, StatusCancelled, err)
		return LeaveResponse{}, err
	}

	if changed {
		s.emitStatusChanged(ctx, l, from)
		s.logger.Info("leave cancelled", zap.String("leave_id", l.ID), zap.String("from", from))
	}
	return mapToResponse(l), nil
}

func (s *service) logTransitionError(id, to string, err error) {
	if apperror.IsClientError(err) {
		s.logger.Warn("leave transition rejected",
			zap.String("leave_id", id),
			zap.String("target_status", to),
			zap.Error(err),
		)
		return
	}
	s.logger.Error("leave transition failed", zap.String("leave_id", id), zap.Error(err))
}

func (s *service) emitStatusChanged(ctx context.Context, l Leave, from string) {
	kafka.Emit(ctx, s.publisher, s.logger, events.LeaveStatusTopic, events.LeaveStatusChanged,
		l.TenantID, "leave", l.ID, events.LeaveStatusChangedData{
			LeaveID:    l.ID,
			EmployeeID: l.EmployeeID,
			From:       from,
			To:         l.Status,
			ApproverID: l.ApproverID,
		})
}
