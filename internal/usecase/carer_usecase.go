package usecase

import (
	"context"
	"errors"
	"go-care-backend/internal/domain"
	"go-care-backend/pkg/apperror"
	"time"

	"github.com/go-playground/validator/v10"
)

type carerUsecase struct {
	carerRepo domain.CarerRepository
	validate  *validator.Validate
}

func NewCarerUsecase(carerRepo domain.CarerRepository, validate *validator.Validate) domain.CarerUsecase {
	return &carerUsecase{
		carerRepo: carerRepo,
		validate:  validate,
	}
}

func (u *carerUsecase) GetProfile(ctx context.Context, userID string) (*domain.Carer, error) {
	authedID, ok := ctxUserID(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if authedID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}
	return u.carerRepo.GetByUserID(ctx, userID)
}

// GetPublicProfile returns a carer profile for family-facing pages. Only
// approved carers are visible publicly.
func (u *carerUsecase) GetPublicProfile(ctx context.Context, userID string) (*domain.Carer, error) {
	carer, err := u.carerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if carer.ApprovalStatus != domain.CarerStatusApproved {
		return nil, apperror.NotFound("Carer not found")
	}
	return carer, nil
}

func (u *carerUsecase) UpdateProfile(ctx context.Context, carer *domain.Carer) error {
	authedID, ok := ctxUserID(ctx)
	if !ok {
		return apperror.Unauthorized("User not authenticated")
	}
	// Force UserID from context; never trust the payload
	carer.UserID = authedID

	if err := u.validate.Struct(carer); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if carer.YearsExperience < 0 {
		return apperror.BadRequest("YearsExperience cannot be negative")
	}
	for _, rate := range carer.Rates {
		if !validCareTypes[rate.CareType] {
			return apperror.BadRequest("Invalid care type in rates")
		}
		if rate.Rate <= 0 {
			return apperror.BadRequest("Rates must be positive")
		}
	}

	carer.UpdatedAt = time.Now()

	err := u.carerRepo.Update(ctx, carer)
	if errors.Is(err, domain.ErrNotFound) {
		// First save creates the profile; approval starts pending
		carer.ApprovalStatus = domain.CarerStatusPending
		carer.CreatedAt = time.Now()
		return u.carerRepo.Create(ctx, carer)
	}
	return err
}
