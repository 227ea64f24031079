package attendance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hris-backoffice/internal/attendance"
	attendanceerrors "go-hris-backoffice/internal/attendance/errors"
	"go-hris-backoffice/internal/attendance/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeService struct {
	attendance.Service
	clockInFn func(ctx context.Context, tenantID, id string, req attendance.ClockRequest) (attendance.TimesheetResponse, error)
}

func (f *fakeService) ClockIn(ctx context.Context, tenantID, id string, req attendance.ClockRequest) (attendance.TimesheetResponse, error) {
	return f.clockInFn(ctx, tenantID, id, req)
}

func setupRouter(svc attendance.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tenant := func(c *gin.Context) {
		c.Set("tenant_id", "t1")
		c.Next()
	}
	attendance.RegisterRoutes(r.Group("/api/v1"), attendance.NewHandler(svc), tenant)
	return r
}

func TestHandler_ClockIn(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		at := "2024-05-06T09:00:00Z"
		svc := &fakeService{clockInFn: func(_ context.Context, tenantID, id string, req attendance.ClockRequest) (attendance.TimesheetResponse, error) {
			assert.Equal(t, "t1", tenantID)
			assert.Equal(t, "ts-1", id)
			return attendance.TimesheetResponse{ID: id, ClockIn: &req.At}, nil
		}}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/api/v1/attendance/timesheets/ts-1/clock-in", strings.NewReader(`{"at":"`+at+`"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data attendance.TimesheetResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, at, *body.Data.ClockIn)
		assert.NotContains(t, w.Body.String(), "hours")
	})

	t.Run("missing at", func(t *testing.T) {
		r := setupRouter(&fakeService{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/api/v1/attendance/timesheets/ts-1/clock-in", strings.NewReader(`{}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid timestamp", func(t *testing.T) {
		svc := &fakeService{clockInFn: func(context.Context, string, string, attendance.ClockRequest) (attendance.TimesheetResponse, error) {
			return attendance.TimesheetResponse{}, attendanceerrors.ErrInvalidTimestamp
		}}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/api/v1/attendance/timesheets/ts-1/clock-in", strings.NewReader(`{"at":"soon"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestHandler_Shifts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mock.NewMockService(ctrl)
	r := setupRouter(mockSvc)

	mockSvc.EXPECT().
		CreateShift(gomock.Any(), "t1", attendance.CreateShiftRequest{
			StoreID: "s1", Name: "Night", StartTime: "2024-05-06T22:00:00Z", EndTime: "2024-05-07T06:00:00Z",
		}).
		Return(attendance.ShiftResponse{ID: "sh-1"}, nil)
	mockSvc.EXPECT().
		GetShifts(gomock.Any(), "t1").
		Return([]attendance.ShiftResponse{{ID: "sh-1"}, {ID: "sh-2"}, {ID: "sh-3"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/attendance/shifts",
		strings.NewReader(`{"storeId":"s1","name":"Night","startTime":"2024-05-06T22:00:00Z","endTime":"2024-05-07T06:00:00Z"}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/attendance/shifts?page=2&page_size=2", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []attendance.ShiftResponse `json:"data"`
		Meta struct {
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "sh-3", body.Data[0].ID)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

func TestHandler_GetTimesheet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mock.NewMockService(ctrl)
	r := setupRouter(mockSvc)

	mockSvc.EXPECT().
		GetTimesheetByID(gomock.Any(), "t1", "missing").
		Return(attendance.TimesheetResponse{}, attendanceerrors.ErrTimesheetNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/attendance/timesheets/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
