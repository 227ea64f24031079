package leave

import "go-hris-backoffice/internal/shared/timeutil"

type CreateLeaveRequest struct {
	EmployeeID string   `json:"employeeId" binding:"required"`
	Type       string   `json:"type" binding:"required"`
	StartDate  string   `json:"startDate" binding:"required"`
	EndDate    string   `json:"endDate" binding:"required"`
	Days       *float64 `json:"days" binding:"required"`
	Note       *string  `json:"note"`
}

// UpdateLeaveStatusRequest is the optional body of approve, reject and
// cancel. Cancel ignores the approver.
type UpdateLeaveStatusRequest struct {
	ApproverID *string `json:"approverId"`
	Note       *string `json:"note"`
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	TenantID   string  `json:"tenantId"`
	EmployeeID string  `json:"employeeId"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Days       float64 `json:"days"`
	ApproverID *string `json:"approverId,omitempty"`
	Note       *string `json:"note,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		TenantID:   l.TenantID,
		EmployeeID: l.EmployeeID,
		Type:       l.Type,
		Status:     l.Status,
		StartDate:  timeutil.Format(l.StartDate),
		EndDate:    timeutil.Format(l.EndDate),
		Days:       l.Days,
		ApproverID: l.ApproverID,
		Note:       l.Note,
		CreatedAt:  timeutil.Format(l.CreatedAt),
		UpdatedAt:  timeutil.Format(l.UpdatedAt),
	}
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, mapToResponse(l))
	}
	return out
}
