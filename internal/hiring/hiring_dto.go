package hiring

import (
	"go-hris-backoffice/internal/shared/patch"
	"go-hris-backoffice/internal/shared/timeutil"
)

type CreatePostingRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	StoreID     *string `json:"storeId"`
	IsActive    *bool   `json:"isActive"`
}

// UpdatePostingRequest only touches fields present in the payload. A null
// clears description and storeId and is ignored for title and isActive.
type UpdatePostingRequest struct {
	Title       patch.Field[string] `json:"title"`
	Description patch.Field[string] `json:"description"`
	StoreID     patch.Field[string] `json:"storeId"`
	IsActive    patch.Field[bool]   `json:"isActive"`
}

type CreateCandidateRequest struct {
	FirstName string   `json:"firstName" binding:"required"`
	LastName  string   `json:"lastName" binding:"required"`
	Email     *string  `json:"email"`
	Phone     *string  `json:"phone"`
	ResumeURL *string  `json:"resumeUrl"`
	Tags      []string `json:"tags"`
}

type CreateApplicationRequest struct {
	CandidateID string   `json:"candidateId" binding:"required"`
	PostingID   string   `json:"postingId" binding:"required"`
	Stage       *string  `json:"stage"`
	Score       *float64 `json:"score"`
	Notes       *string  `json:"notes"`
}

type UpdateApplicationRequest struct {
	Stage patch.Field[string]  `json:"stage"`
	Score patch.Field[float64] `json:"score"`
	Notes patch.Field[string]  `json:"notes"`
}

type PostingResponse struct {
	ID          string  `json:"id"`
	TenantID    string  `json:"tenantId"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StoreID     *string `json:"storeId,omitempty"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type CandidateResponse struct {
	ID        string   `json:"id"`
	TenantID  string   `json:"tenantId"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     *string  `json:"email,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	ResumeURL *string  `json:"resumeUrl,omitempty"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type ApplicationResponse struct {
	ID          string   `json:"id"`
	TenantID    string   `json:"tenantId"`
	CandidateID string   `json:"candidateId"`
	PostingID   string   `json:"postingId"`
	Stage       string   `json:"stage"`
	Score       *float64 `json:"score,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

func mapPostingToResponse(p Posting) PostingResponse {
	return PostingResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		Title:       p.Title,
		Description: p.Description,
		StoreID:     p.StoreID,
		IsActive:    p.IsActive,
		CreatedAt:   timeutil.Format(p.CreatedAt),
		UpdatedAt:   timeutil.Format(p.UpdatedAt),
	}
}

func mapCandidateToResponse(c Candidate) CandidateResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return CandidateResponse{
		ID:        c.ID,
		TenantID:  c.TenantID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		ResumeURL: c.ResumeURL,
		Tags:      tags,
		CreatedAt: timeutil.Format(c.CreatedAt),
		UpdatedAt: timeutil.Format(c.UpdatedAt),
	}
}

func mapApplicationToResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		TenantID:    a.TenantID,
		CandidateID: a.CandidateID,
		PostingID:   a.PostingID,
		Stage:       a.Stage,
		Score:       a.Score,
		Notes:       a.Notes,
		CreatedAt:   timeutil.Format(a.CreatedAt),
		UpdatedAt:   timeutil.Format(a.UpdatedAt),
	}
}

func mapList[E any, R any](items []E, fn func(E) R) []R {
	res := make([]R, len(items))
	for i, item := range items {
		res[i] = fn(item)
	}
	return res
}
