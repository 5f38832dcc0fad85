package domain

import (
	"context"
	"time"
)

// Match lifecycle
const (
	MatchStatusSuggested        = "suggested"
	MatchStatusFamilyInterested = "family_interested"
	MatchStatusConfirmed        = "confirmed"
	MatchStatusDeclined         = "declined"
	MatchStatusExpired          = "expired"
)

type Match struct {
	ID            string    `json:"id"`
	CareRequestID string    `json:"care_request_id"`
	CarerID       string    `json:"carer_id"`
	Score         float64   `json:"score"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MatchWithCarer extends Match with the carer profile data a family needs to
// evaluate the suggestion.
type MatchWithCarer struct {
	Match
	CarerName       string   `json:"carer_name"`
	Specializations []string `json:"specializations"`
	YearsExperience int      `json:"years_experience"`
	Rate            *float64 `json:"rate,omitempty"`
	AvgRating       *float64 `json:"avg_rating,omitempty"`
	ReviewCount     int      `json:"review_count"`
}

type MatchRepository interface {
	Create(ctx context.Context, match *Match) error
	FetchByRequestID(ctx context.Context, careRequestID string) ([]MatchWithCarer, error)
	ExistsForRequest(ctx context.Context, careRequestID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	// FetchAll returns every match with carer display data, newest first.
	// Used by the admin report export.
	FetchAll(ctx context.Context, limit, offset int) ([]MatchWithCarer, int64, error)
}

type MatchingUsecase interface {
	// FindMatches runs the matching engine for a care request and returns the
	// ranked, persisted shortlist.
	FindMatches(ctx context.Context, careRequestID string) ([]MatchWithCarer, error)
	ListMatches(ctx context.Context, familyID, careRequestID string) ([]MatchWithCarer, error)
}
