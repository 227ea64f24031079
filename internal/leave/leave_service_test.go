package leave_test

import (
	"context"
	"testing"

	"go-hris-backoffice/internal/events"
	"go-hris-backoffice/internal/leave"
	leaveerrors "go-hris-backoffice/internal/leave/errors"
	"go-hris-backoffice/internal/shared/apperror"
	"go-hris-backoffice/internal/tenantstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	sent []events.Envelope
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, env events.Envelope) error {
	p.sent = append(p.sent, env)
	return nil
}

func setupService() (leave.Service, *recordingPublisher) {
	pub := &recordingPublisher{}
	return leave.NewService(tenantstore.NewMemoryStore[leave.Leave](leave.Collection), pub), pub
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func validRequest() leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       leave.TypeAnnual,
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-03",
		Days:       floatPtr(3),
		Note:       strPtr("family trip"),
	}
}

func createPending(t *testing.T, svc leave.Service) leave.LeaveResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), "t1", validRequest())
	require.NoError(t, err)
	return resp
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, _ := setupService()

		resp, err := svc.Create(ctx, "t1", validRequest())
		require.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, "2024-03-01T00:00:00Z", resp.StartDate)
		assert.Equal(t, float64(3), resp.Days)
		assert.Nil(t, resp.ApproverID)

		found, err := svc.GetByID(ctx, "t1", resp.ID)
		require.NoError(t, err)
		assert.Equal(t, resp, found)
	})

	t.Run("equal instants accepted", func(t *testing.T) {
		svc, _ := setupService()
		req := validRequest()
		req.StartDate = "2024-03-01T09:00:00Z"
		req.EndDate = "2024-03-01T09:00:00Z"

		_, err := svc.Create(ctx, "t1", req)
		assert.NoError(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		svc, _ := setupService()
		req := validRequest()
		req.StartDate = "2024-03-01T09:00:00Z"
		req.EndDate = "2024-03-01T08:59:59Z"

		_, err := svc.Create(ctx, "t1", req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)

		all, _ := svc.GetAll(ctx, "t1")
		assert.Empty(t, all)
	})

	t.Run("unparseable date", func(t *testing.T) {
		svc, _ := setupService()
		req := validRequest()
		req.EndDate = "next week"

		_, err := svc.Create(ctx, "t1", req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
		assert.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))
	})

	t.Run("unknown type", func(t *testing.T) {
		svc, _ := setupService()
		req := validRequest()
		req.Type = "SABBATICAL"

		_, err := svc.Create(ctx, "t1", req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)
	})

	t.Run("days not checked against span", func(t *testing.T) {
		svc, _ := setupService()
		req := validRequest()
		req.Days = floatPtr(10)

		resp, err := svc.Create(ctx, "t1", req)
		require.NoError(t, err)
		assert.Equal(t, float64(10), resp.Days)
	})
}

func TestLeaveService_ApproveReject(t *testing.T) {
	ctx := context.Background()

	t.Run("approve once", func(t *testing.T) {
		svc, pub := setupService()
		created := createPending(t, svc)

		resp, err := svc.Approve(ctx, "t1", created.ID, leave.UpdateLeaveStatusRequest{ApproverID: strPtr("mgr-1")})
		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, "mgr-1", *resp.ApproverID)
		assert.Equal(t, "family trip", *resp.Note)

		_, err = svc.Approve(ctx, "t1", created.ID, leave.UpdateLeaveStatusRequest{})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
		_, err = svc.Reject(ctx, "t1", created.ID, leave.UpdateLeaveStatusRequest{})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)

		require.Len(t, pub.sent, 1)
		assert.Equal(t, events.LeaveStatusChanged, pub.sent[0].EventType)
	})

	t.Run("reject overwrites note only when non-empty", func(t *testing.T) {
		svc, _ := setupService()
		created := createPending(t, svc)

		resp, err := svc.Reject(ctx, "t1", created.ID, leave.UpdateLeaveStatusRequest{Note: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Equal(t, "family trip", *resp.Note)
		assert.Nil(t, resp.ApproverID)

		second := createPending(t, svc)
		resp, err = svc.Reject(ctx, "t1", second.ID, leave.UpdateLeaveStatusRequest{Note: strPtr("peak season")})
		require.NoError(t, err)
		assert.Equal(t, "peak season", *resp.Note)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _ := setupService()

		_, err := svc.Approve(ctx, "t1", "missing", leave.UpdateLeaveStatusRequest{})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("transition code", func(t *testing.T) {
		svc, _ := setupService()
		created := createPending(t, svc)
		_, _ = svc.Cancel(ctx, "t1", created.ID, leave.UpdateLeaveStatusRequest{})

		_, err := svc.Approve(ctx, "t1", created.ID, leave.UpdateLeaveStatusRequest{})
		assert.Equal(t, apperror.CodeInvalidState, apperror.CodeOf(err))
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()

	for _, from := range []string{leave.StatusPending, leave.StatusApproved, leave.StatusRejected} {
		t.Run("from "+from, func(t *testing.T) {
			svc, _ := setupService()
			created := createPending(t, svc)

			switch from {
			case leave.StatusApproved:
				_, err := svc.Approve(ctx, "t1", created.ID, leave.UpdateLeaveStatusRequest{})
				require.NoError(t, err)
			case leave.StatusRejected:
				_, err := svc.Reject(ctx, "t1", created.ID, leave.UpdateLeaveStatusRequest{})
				require.NoError(t, err)
			}

			resp, err := svc.Cancel(ctx, "t1", created.ID, leave.UpdateLeaveStatusRequest{Note: strPtr("plans changed")})
			require.NoError(t, err)
			assert.Equal(t, leave.StatusCancelled, resp.Status)
			assert.Equal(t, "plans changed", *resp.Note)
		})
	}

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		svc, pub := setupService()
		created := createPending(t, svc)

		first, err := svc.Cancel(ctx, "t1", created.ID, leave.UpdateLeaveStatusRequest{})
		require.NoError(t, err)

		second, err := svc.Cancel(ctx, "t1", created.ID, leave.UpdateLeaveStatusRequest{Note: strPtr("ignored")})
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, pub.sent, 1)
	})

	t.Run("other tenant", func(t *testing.T) {
		svc, _ := setupService()
		created := createPending(t, svc)

		_, err := svc.Cancel(ctx, "t2", created.ID, leave.UpdateLeaveStatusRequest{})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}
