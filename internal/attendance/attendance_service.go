package attendance

import (
	"context"
	"strings"
	"time"

	attendanceerrors "go-hris-backoffice/internal/attendance/errors"
	"go-hris-backoffice/internal/shared/apperror"
	"go-hris-backoffice/internal/shared/contextutil"
	"go-hris-backoffice/internal/shared/timeutil"
	"go-hris-backoffice/internal/tenantstore"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ShiftCollection     = tenantstore.Collection{Kind: "shift", NotFound: attendanceerrors.ErrShiftNotFound}
	TimesheetCollection = tenantstore.Collection{Kind: "timesheet", NotFound: attendanceerrors.ErrTimesheetNotFound}
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CreateShift(ctx context.Context, tenantID string, req CreateShiftRequest) (ShiftResponse, error)
	GetShifts(ctx context.Context, tenantID string) ([]ShiftResponse, error)
	CreateTimesheet(ctx context.Context, tenantID string, req CreateTimesheetRequest) (TimesheetResponse, error)
	GetTimesheets(ctx context.Context, tenantID string) ([]TimesheetResponse, error)
	GetTimesheetByID(ctx context.Context, tenantID, id string) (TimesheetResponse, error)
	ClockIn(ctx context.Context, tenantID, id string, req ClockRequest) (TimesheetResponse, error)
	ClockOut(ctx context.Context, tenantID, id string, req ClockRequest) (TimesheetResponse, error)
}

type service struct {
	shifts     tenantstore.Store[Shift]
	timesheets tenantstore.Store[Timesheet]
	logger     *zap.Logger
}

func NewService(shifts tenantstore.Store[Shift], timesheets tenantstore.Store[Timesheet], logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{shifts: shifts, timesheets: timesheets, logger: l}
}

func (s *service) CreateShift(ctx context.Context, tenantID string, req CreateShiftRequest) (ShiftResponse, error) {
	s.logger.Debug("create shift requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("tenant_id", tenantID),
		zap.String("store_id", req.StoreID),
	)

	if err := tenantstore.CheckTenant(tenantID); err != nil {
		return ShiftResponse{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return ShiftResponse{}, apperror.RequiredField("name")
	}

	start, err := timeutil.ParseInstant(req.StartTime)
	if err != nil {
		return ShiftResponse{}, attendanceerrors.ErrInvalidShiftTime
	}
	end, err := timeutil.ParseInstant(req.EndTime)
	if err != nil {
		return ShiftResponse{}, attendanceerrors.ErrInvalidShiftTime
	}
	if !end.After(start) {
		s.logger.Warn("create shift invalid range",
			zap.String("start_time", req.StartTime),
			zap.String("end_time", req.EndTime),
		)
		return ShiftResponse{}, attendanceerrors.ErrInvalidShiftRange
	}

	now := timeutil.Now()
	shift := Shift{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		StoreID:   req.StoreID,
		Name:      req.Name,
		StartTime: start,
		EndTime:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.shifts.Append(ctx, tenantID, shift); err != nil {
		s.logger.Error("create shift persist failed", zap.Error(err))
		return ShiftResponse{}, err
	}

	s.logger.Info("create shift success",
		zap.String("shift_id", shift.ID),
		zap.String("tenant_id", tenantID),
	)
	return mapShiftToResponse(shift), nil
}

func (s *service) GetShifts(ctx context.Context, tenantID string) ([]ShiftResponse, error) {
	shifts, err := s.shifts.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return mapShiftsToResponse(shifts), nil
}

func (s *service) CreateTimesheet(ctx context.Context, tenantID string, req CreateTimesheetRequest) (TimesheetResponse, error) {
	s.logger.Debug("create timesheet requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("tenant_id", tenantID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("work_date", req.WorkDate),
	)

	if err := tenantstore.CheckTenant(tenantID); err != nil {
		return TimesheetResponse{}, err
	}
	if strings.TrimSpace(req.EmployeeID) == "" {
		return TimesheetResponse{}, apperror.RequiredField("employeeId")
	}

	workDate, err := timeutil.ParseInstant(req.WorkDate)
	if err != nil {
		return TimesheetResponse{}, attendanceerrors.ErrInvalidWorkDate
	}

	now := timeutil.Now()
	ts := Timesheet{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		WorkDate:   workDate,
		Note:       req.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.timesheets.Append(ctx, tenantID, ts); err != nil {
		s.logger.Error("create timesheet persist failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	s.logger.Info("create timesheet success",
		zap.String("timesheet_id", ts.ID),
		zap.String("tenant_id", tenantID),
	)
	return mapTimesheetToResponse(ts), nil
}

func (s *service) GetTimesheets(ctx context.Context, tenantID string) ([]TimesheetResponse, error) {
	sheets, err := s.timesheets.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return mapTimesheetsToResponse(sheets), nil
}

func (s *service) GetTimesheetByID(ctx context.Context, tenantID, id string) (TimesheetResponse, error) {
	ts, err := s.timesheets.FindByID(ctx, tenantID, id)
	if err != nil {
		return TimesheetResponse{}, err
	}
	return mapTimesheetToResponse(ts), nil
}

func (s *service) ClockIn(ctx context.Context, tenantID, id string, req ClockRequest) (TimesheetResponse, error) {
	return s.clock(ctx, tenantID, id, req.At, func(ts *Timesheet, at time.Time) {
		ts.ClockIn = &at
	})
}

func (s *service) ClockOut(ctx context.Context, tenantID, id string, req ClockRequest) (TimesheetResponse, error) {
	return s.clock(ctx, tenantID, id, req.At, func(ts *Timesheet, at time.Time) {
		ts.ClockOut = &at
	})
}

// clock sets one side of the clock pair and recomputes derived fields.
// Last write wins; no history is kept.
func (s *service) clock(ctx context.Context, tenantID, id, raw string, set func(*Timesheet, time.Time)) (TimesheetResponse, error) {
	s.logger.Debug("clock event requested",
		zap.String("tenant_id", tenantID),
		zap.String("timesheet_id", id),
		zap.String("at", raw),
	)

	if err := tenantstore.CheckTenant(tenantID); err != nil {
		return TimesheetResponse{}, err
	}
	if _, err := s.timesheets.FindByID(ctx, tenantID, id); err != nil {
		return TimesheetResponse{}, err
	}

	at, err := timeutil.ParseInstant(raw)
	if err != nil {
		return TimesheetResponse{}, attendanceerrors.ErrInvalidTimestamp
	}

	ts, err := s.timesheets.Update(ctx, tenantID, id, func(ts *Timesheet) error {
		set(ts, at)
		ts.recompute()
		ts.UpdatedAt = timeutil.Now()
		return nil
	})
	if err != nil {
		s.logger.Error("clock event persist failed", zap.String("timesheet_id", id), zap.Error(err))
		return TimesheetResponse{}, err
	}

	fields := []zap.Field{zap.String("timesheet_id", ts.ID)}
	if ts.Hours != nil {
		fields = append(fields, zap.String("hours", ts.Hours.StringFixed(2)), zap.Int64("overtime_mins", *ts.OvertimeMins))
	}
	s.logger.Info("clock event recorded", fields...)
	return mapTimesheetToResponse(ts), nil
}
