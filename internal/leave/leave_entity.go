package leave

import (
	"time"

	leaveerrors "go-hris-backoffice/internal/leave/errors"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

const (
	TypeAnnual       = "ANNUAL"
	TypeSick         = "SICK"
	TypeUnpaid       = "UNPAID"
	TypeMaternity    = "MATERNITY"
	TypePaternity    = "PATERNITY"
	TypeCompensatory = "COMPENSATORY"
)

var validTypes = map[string]bool{
	TypeAnnual:       true,
	TypeSick:         true,
	TypeUnpaid:       true,
	TypeMaternity:    true,
	TypePaternity:    true,
	TypeCompensatory: true,
}

func IsValidType(t string) bool {
	return validTypes[t]
}

type Leave struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenantId"`
	EmployeeID string    `json:"employeeId"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Days       float64   `json:"days"`
	ApproverID *string   `json:"approverId,omitempty"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (l Leave) GetID() string { return l.ID }

// decide moves a PENDING request to APPROVED or REJECTED. The approver is
// always replaced, the note only by a non-empty value.
func (l *Leave) decide(to string, approverID, note *string, now time.Time) error {
	if l.Status != StatusPending {
		return leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = to
	l.ApproverID = approverID
	if note != nil && *note != "" {
		l.Note = note
	}
	l.UpdatedAt = now
	return nil
}

// cancel reports false when the request was already cancelled.
func (l *Leave) cancel(note *string, now time.Time) bool {
	if l.Status == StatusCancelled {
		return false
	}

	l.Status = StatusCancelled
	if note != nil && *note != "" {
		l.Note = note
	}
	l.UpdatedAt = now
	return true
}
