package domain

import (
	"context"
	"time"
)

// Mobility levels for a care recipient
const (
	MobilityIndependent    = "independent"
	MobilitySomeAssistance = "some_assistance"
	MobilityFullSupport    = "full_support"
)

type CareRecipient struct {
	ID                string    `json:"id"`
	FamilyID          string    `json:"family_id"`
	Name              string    `json:"name" validate:"required,min=2,max=100"`
	MedicalConditions *string   `json:"medical_conditions,omitempty"`
	MobilityLevel     string    `json:"mobility_level" validate:"required,oneof=independent some_assistance full_support"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CareRecipientRepository interface {
	Create(ctx context.Context, recipient *CareRecipient) error
	GetByID(ctx context.Context, id string) (*CareRecipient, error)
	FetchByFamilyID(ctx context.Context, familyID string) ([]CareRecipient, error)
}

type CareRecipientUsecase interface {
	CreateRecipient(ctx context.Context, familyID string, recipient *CareRecipient) error
	ListRecipients(ctx context.Context, familyID string) ([]CareRecipient, error)
}
