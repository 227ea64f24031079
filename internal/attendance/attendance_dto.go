package attendance

import (
	"time"

	"go-hris-backoffice/internal/shared/timeutil"
)

type CreateShiftRequest struct {
	StoreID   string `json:"storeId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type CreateTimesheetRequest struct {
	EmployeeID string  `json:"employeeId" binding:"required"`
	WorkDate   string  `json:"workDate" binding:"required"`
	ShiftID    *string `json:"shiftId"`
	Note       *string `json:"note"`
}

// ClockRequest is the body of clock-in and clock-out.
type ClockRequest struct {
	At string `json:"at" binding:"required"`
}

type ShiftResponse struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenantId"`
	StoreID   string `json:"storeId"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type TimesheetResponse struct {
	ID           string   `json:"id"`
	TenantID     string   `json:"tenantId"`
	EmployeeID   string   `json:"employeeId"`
	ShiftID      *string  `json:"shiftId,omitempty"`
	WorkDate     string   `json:"workDate"`
	ClockIn      *string  `json:"clockIn,omitempty"`
	ClockOut     *string  `json:"clockOut,omitempty"`
	Hours        *float64 `json:"hours,omitempty"`
	OvertimeMins *int64   `json:"overtimeMins,omitempty"`
	Note         *string  `json:"note,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

func mapShiftToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		TenantID:  s.TenantID,
		StoreID:   s.StoreID,
		Name:      s.Name,
		StartTime: timeutil.Format(s.StartTime),
		EndTime:   timeutil.Format(s.EndTime),
		CreatedAt: timeutil.Format(s.CreatedAt),
		UpdatedAt: timeutil.Format(s.UpdatedAt),
	}
}

func mapShiftsToResponse(shifts []Shift) []ShiftResponse {
	res := make([]ShiftResponse, len(shifts))
	for i, s := range shifts {
		res[i] = mapShiftToResponse(s)
	}
	return res
}

func mapTimesheetToResponse(t Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:           t.ID,
		TenantID:     t.TenantID,
		EmployeeID:   t.EmployeeID,
		ShiftID:      t.ShiftID,
		WorkDate:     timeutil.Format(t.WorkDate),
		ClockIn:      formatOptional(t.ClockIn),
		ClockOut:     formatOptional(t.ClockOut),
		OvertimeMins: t.OvertimeMins,
		Note:         t.Note,
		CreatedAt:    timeutil.Format(t.CreatedAt),
		UpdatedAt:    timeutil.Format(t.UpdatedAt),
	}
	if t.Hours != nil {
		h := t.Hours.InexactFloat64()
		resp.Hours = &h
	}
	return resp
}

func mapTimesheetsToResponse(sheets []Timesheet) []TimesheetResponse {
	res := make([]TimesheetResponse, len(sheets))
	for i, t := range sheets {
		res[i] = mapTimesheetToResponse(t)
	}
	return res
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := timeutil.Format(*t)
	return &v
}
