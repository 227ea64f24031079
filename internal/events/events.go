package events

import (
	"context"
	"encoding/json"
	"time"

	"go-hris-backoffice/internal/shared/contextutil"

	"github.com/google/uuid"
)

const (
	EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"
	LeaveStatusTopic       = "hr.leave.status.v1"
	HiringApplicationTopic = "hr.hiring.application.v1"
)

const (
	EmployeeCreated         = "employee.created"
	EmployeeTerminated      = "employee.terminated"
	LeaveStatusChanged      = "leave.status_changed"
	ApplicationStageChanged = "application.stage_changed"
)

// Envelope is the message body on every HR topic.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	TenantID      string          `json:"tenant_id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	RequestID     string          `json:"request_id,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Data          json.RawMessage `json:"data"`
}

// New builds an envelope stamped with the request id carried by ctx.
func New(ctx context.Context, eventType, tenantID, aggregateType, aggregateID string, data any) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		TenantID:      tenantID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		RequestID:     contextutil.GetRequestID(ctx),
		OccurredAt:    time.Now().UTC(),
		Data:          raw,
	}, nil
}

func Topics() []string {
	return []string{EmployeeLifecycleTopic, LeaveStatusTopic, HiringApplicationTopic}
}

type EmployeeLifecycleData struct {
	EmployeeID      string  `json:"employee_id"`
	Status          string  `json:"status"`
	HireDate        string  `json:"hire_date"`
	TerminationDate *string `json:"termination_date,omitempty"`
}

type LeaveStatusChangedData struct {
	LeaveID    string  `json:"leave_id"`
	EmployeeID string  `json:"employee_id"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	ApproverID *string `json:"approver_id,omitempty"`
}

type ApplicationStageChangedData struct {
	ApplicationID string `json:"application_id"`
	CandidateID   string `json:"candidate_id"`
	PostingID     string `json:"posting_id"`
	From          string `json:"from,omitempty"`
	To            string `json:"to"`
}
