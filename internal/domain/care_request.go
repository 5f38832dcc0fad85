package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Care types offered on the platform
const (
	CareTypeLiveIn     = "live_in"
	CareTypeHourly     = "hourly"
	CareTypeRespite    = "respite"
	CareTypeSpecialist = "specialist"
)

// Care request lifecycle
const (
	RequestStatusCreated  = "created"
	RequestStatusMatching = "matching"
	RequestStatusMatched  = "matched"
	RequestStatusExpired  = "expired"
)

type CareRequest struct {
	ID           string     `json:"id"`
	FamilyID     string     `json:"family_id"`
	RecipientID  string     `json:"recipient_id"`
	CareType     string     `json:"care_type"`
	ScheduleType string     `json:"schedule_type"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	BudgetMin    float64    `json:"budget_min"`
	BudgetMax    float64    `json:"budget_max"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CareRequestRepository interface {
	Create(ctx context.Context, req *CareRequest) error
	GetByID(ctx context.Context, id string) (*CareRequest, error)
	FetchByFamilyID(ctx context.Context, familyID string, limit, offset int) ([]CareRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

type CareRequestUsecase interface {
	CreateRequest(ctx context.Context, familyID string, req *CareRequest) error
	GetRequest(ctx context.Context, familyID, id string) (*CareRequest, error)
	ListRequests(ctx context.Context, familyID string, page, pageSize int) ([]CareRequest, int64, error)
}
