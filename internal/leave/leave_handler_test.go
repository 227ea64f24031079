package leave_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hris-backoffice/internal/leave"
	"go-hris-backoffice/internal/leave/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func withTenant(tenantID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("tenant_id", tenantID)
		c.Next()
	}
}

func setupRouter(svc leave.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	leave.RegisterRoutes(r.Group("/api/v1"), leave.NewHandler(svc), withTenant("t1"))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
	}
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Ok    bool                `json:"ok"`
	Data  leave.LeaveResponse `json:"data"`
	Error map[string]any      `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandler_Workflow(t *testing.T) {
	svc, _ := setupService()
	r := setupRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/v1/leaves",
		`{"employeeId":"emp-1","type":"SICK","startDate":"2024-03-01","endDate":"2024-03-02","days":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w).Data
	assert.Equal(t, leave.StatusPending, created.Status)

	w = doJSON(r, http.MethodPatch, "/api/v1/leaves/"+created.ID+"/approve", `{"approverId":"mgr-1","note":"get well"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, leave.StatusApproved, decode(t, w).Data.Status)

	w = doJSON(r, http.MethodPatch, "/api/v1/leaves/"+created.ID+"/reject", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_STATE", decode(t, w).Error["code"])

	w = doJSON(r, http.MethodPatch, "/api/v1/leaves/"+created.ID+"/cancel", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, leave.StatusCancelled, decode(t, w).Data.Status)

	w = doJSON(r, http.MethodPatch, "/api/v1/leaves/"+created.ID+"/cancel", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Create_Invalid(t *testing.T) {
	svc, _ := setupService()
	r := setupRouter(svc)

	t.Run("missing days", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/leaves",
			`{"employeeId":"emp-1","type":"SICK","startDate":"2024-03-01","endDate":"2024-03-02"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("range", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/leaves",
			`{"employeeId":"emp-1","type":"SICK","startDate":"2024-03-05","endDate":"2024-03-02","days":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, w).Error["code"])
	})
}

func TestHandler_GetById_NotFound(t *testing.T) {
	svc, _ := setupService()
	r := setupRouter(svc)

	w := doJSON(r, http.MethodGet, "/api/v1/leaves/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Approve_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mock.NewMockService(ctrl)
	r := setupRouter(mockSvc)

	mockSvc.EXPECT().
		Approve(gomock.Any(), "t1", "lv-1", leave.UpdateLeaveStatusRequest{}).
		Return(leave.LeaveResponse{ID: "lv-1", Status: leave.StatusApproved}, nil)

	w := doJSON(r, http.MethodPatch, "/api/v1/leaves/lv-1/approve", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lv-1", decode(t, w).Data.ID)
}

func TestHandler_Reject_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mock.NewMockService(ctrl)
	r := setupRouter(mockSvc)

	w := doJSON(r, http.MethodPatch, "/api/v1/leaves/lv-1/reject", `{"note":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
