package employee

import "time"

const (
	StatusActive     = "ACTIVE"
	StatusTerminated = "TERMINATED"
	StatusSuspended  = "SUSPENDED"
)

type Employee struct {
	ID              string     `json:"id"`
	TenantID        string     `json:"tenantId"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           *string    `json:"email,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Position        *string    `json:"position,omitempty"`
	Department      *string    `json:"department,omitempty"`
	Status          string     `json:"status"`
	HireDate        string     `json:"hireDate"`
	TerminationDate *string    `json:"terminationDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (e Employee) GetID() string { return e.ID }
