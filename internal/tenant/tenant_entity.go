package tenant

import "time"

// Tenant is global: it lives in the registry partition, not under a tenant.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t Tenant) GetID() string { return t.ID }
