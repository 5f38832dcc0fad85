package usecase

import (
	"context"
	"errors"
	"go-care-backend/internal/domain"
	"go-care-backend/pkg/apperror"
	"time"

	"github.com/google/uuid"
)

type careRequestUsecase struct {
	requestRepo   domain.CareRequestRepository
	recipientRepo domain.CareRecipientRepository
}

func NewCareRequestUsecase(requestRepo domain.CareRequestRepository, recipientRepo domain.CareRecipientRepository) domain.CareRequestUsecase {
	return &careRequestUsecase{
		requestRepo:   requestRepo,
		recipientRepo: recipientRepo,
	}
}

var validCareTypes = map[string]bool{
	domain.CareTypeLiveIn:     true,
	domain.CareTypeHourly:     true,
	domain.CareTypeRespite:    true,
	domain.CareTypeSpecialist: true,
}

func (u *careRequestUsecase) CreateRequest(ctx context.Context, familyID string, req *domain.CareRequest) error {
	// The recipient must belong to the requesting family
	recipient, err := u.recipientRepo.GetByID(ctx, req.RecipientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Care recipient not found")
		}
		return apperror.Internal(err)
	}
	if recipient.FamilyID != familyID {
		return apperror.Forbidden("You can only create requests for your own care recipients")
	}

	if !validCareTypes[req.CareType] {
		return apperror.BadRequest("Invalid care type")
	}
	if req.BudgetMin < 0 || req.BudgetMax < 0 {
		return apperror.BadRequest("Budget cannot be negative")
	}
	if req.BudgetMin > req.BudgetMax {
		return apperror.BadRequest("BudgetMin cannot be greater than BudgetMax")
	}

	req.ID = uuid.NewString()
	req.FamilyID = familyID
	req.Status = domain.RequestStatusCreated
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()

	return u.requestRepo.Create(ctx, req)
}

func (u *careRequestUsecase) GetRequest(ctx context.Context, familyID, id string) (*domain.CareRequest, error) {
	req, err := u.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Care request not found")
		}
		return nil, apperror.Internal(err)
	}
	if req.FamilyID != familyID {
		return nil, apperror.Forbidden("You can only view your own care requests")
	}
	return req, nil
}

func (u *careRequestUsecase) ListRequests(ctx context.Context, familyID string, page, pageSize int) ([]domain.CareRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.requestRepo.FetchByFamilyID(ctx, familyID, pageSize, offset)
}
