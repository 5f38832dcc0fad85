package domain

import (
	"context"
	"time"
)

// Carer approval lifecycle
const (
	CarerStatusPending  = "pending"
	CarerStatusApproved = "approved"
	CarerStatusRejected = "rejected"
)

type Carer struct {
	UserID             string      `json:"user_id"`
	DisplayName        string      `json:"display_name" validate:"required,min=2,max=100"`
	Bio                string      `json:"bio" validate:"max=1000"`
	ApprovalStatus     string      `json:"approval_status"`
	DBSVerified        bool        `json:"dbs_verified"`
	Latitude           *float64    `json:"latitude,omitempty"`
	Longitude          *float64    `json:"longitude,omitempty"`
	YearsExperience    int         `json:"years_experience"`
	Specializations    []string    `json:"specializations"`
	Rates              []CarerRate `json:"rates,omitempty"`
	HasActivePlacement bool        `json:"has_active_placement"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// CarerRate is the carer's price for one care type. Live-in and respite rates
// are weekly, hourly and specialist rates are per hour.
type CarerRate struct {
	CareType string  `json:"care_type"`
	Rate     float64 `json:"rate"`
}

type Review struct {
	ID        string    `json:"id"`
	CarerID   string    `json:"carer_id"`
	Rating    int       `json:"rating"` // 1-5
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RateFor returns the carer's rate for a care type, nil if not configured.
func (c *Carer) RateFor(careType string) *float64 {
	for _, r := range c.Rates {
		if r.CareType == careType {
			rate := r.Rate
			return &rate
		}
	}
	return nil
}

// CarerCandidate bundles everything the matching engine needs to score one
// carer: the profile plus their review history.
type CarerCandidate struct {
	Carer
	Reviews []Review `json:"reviews,omitempty"`
}

type CarerRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Carer, error)
	Create(ctx context.Context, carer *Carer) error
	Update(ctx context.Context, carer *Carer) error
	UpdateApproval(ctx context.Context, userID string, status string) error
	FetchByStatus(ctx context.Context, status string, limit, offset int) ([]Carer, int64, error)
	// FindEligible returns approved, DBS-verified carers that have a rate
	// configured for the given care type, with their reviews attached, in a
	// stable order.
	FindEligible(ctx context.Context, careType string) ([]CarerCandidate, error)
}

type CarerUsecase interface {
	GetProfile(ctx context.Context, userID string) (*Carer, error)
	GetPublicProfile(ctx context.Context, userID string) (*Carer, error)
	UpdateProfile(ctx context.Context, carer *Carer) error
}
