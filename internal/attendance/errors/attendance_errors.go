package attendanceerrors

import (
	"go-hris-backoffice/internal/shared/apperror"
	"net/http"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift not found",
		http.StatusNotFound,
	)
	ErrTimesheetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Timesheet not found",
		http.StatusNotFound,
	)
	ErrInvalidShiftTime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid startTime or endTime",
		http.StatusBadRequest,
	)
	ErrInvalidShiftRange = apperror.New(
		apperror.CodeInvalidInput,
		"endTime must be after startTime",
		http.StatusBadRequest,
	)
	ErrInvalidWorkDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid workDate",
		http.StatusBadRequest,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid timestamp",
		http.StatusBadRequest,
	)
)
