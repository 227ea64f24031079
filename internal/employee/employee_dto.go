package employee

import "go-hris-backoffice/internal/shared/timeutil"

type CreateEmployeeRequest struct {
	FirstName  string  `json:"firstName" binding:"required"`
	LastName   string  `json:"lastName" binding:"required"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	HireDate   string  `json:"hireDate" binding:"required"`
}

type TerminateEmployeeRequest struct {
	TerminationDate string `json:"terminationDate" binding:"required"`
}

type EmployeeResponse struct {
	ID              string  `json:"id"`
	TenantID        string  `json:"tenantId"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Position        *string `json:"position,omitempty"`
	Department      *string `json:"department,omitempty"`
	Status          string  `json:"status"`
	HireDate        string  `json:"hireDate"`
	TerminationDate *string `json:"terminationDate,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		TenantID:   e.TenantID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		Status:     e.Status,
		HireDate:   e.HireDate,
		CreatedAt:  timeutil.Format(e.CreatedAt),
		UpdatedAt:  timeutil.Format(e.UpdatedAt),
	}
	if e.TerminationDate != nil {
		td := *e.TerminationDate
		resp.TerminationDate = &td
	}
	return resp
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, mapToResponse(e))
	}
	return out
}
