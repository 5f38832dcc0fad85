package usecase

import (
	"context"
	"go-care-backend/internal/domain"
	"go-care-backend/pkg/apperror"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type careRecipientUsecase struct {
	recipientRepo domain.CareRecipientRepository
	validate      *validator.Validate
}

func NewCareRecipientUsecase(recipientRepo domain.CareRecipientRepository, validate *validator.Validate) domain.CareRecipientUsecase {
	return &careRecipientUsecase{
		recipientRepo: recipientRepo,
		validate:      validate,
	}
}

func (u *careRecipientUsecase) CreateRecipient(ctx context.Context, familyID string, recipient *domain.CareRecipient) error {
	recipient.FamilyID = familyID
	if err := u.validate.Struct(recipient); err != nil {
		return apperror.BadRequest(err.Error())
	}

	recipient.ID = uuid.NewString()
	recipient.CreatedAt = time.Now()
	recipient.UpdatedAt = time.Now()

	return u.recipientRepo.Create(ctx, recipient)
}

func (u *careRecipientUsecase) ListRecipients(ctx context.Context, familyID string) ([]domain.CareRecipient, error) {
	return u.recipientRepo.FetchByFamilyID(ctx, familyID)
}
