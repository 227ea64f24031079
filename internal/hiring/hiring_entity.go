package hiring

import "time"

const (
	DefaultStage = "applied"

	MinScore = 0
	MaxScore = 100
)

type Posting struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenantId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	StoreID     *string   `json:"storeId,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p Posting) GetID() string { return p.ID }

type Candidate struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	ResumeURL *string   `json:"resumeUrl,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Candidate) GetID() string { return c.ID }

type Application struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenantId"`
	CandidateID string    `json:"candidateId"`
	PostingID   string    `json:"postingId"`
	Stage       string    `json:"stage"`
	Score       *float64  `json:"score,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a Application) GetID() string { return a.ID }

func validScore(score float64) bool {
	return score >= MinScore && score <= MaxScore
}
