package usecase_test

import (
	"context"
	"testing"

	"go-care-backend/internal/domain"
	"go-care-backend/internal/usecase"
	"go-care-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateRequestRejectsForeignRecipient(t *testing.T) {
	requestRepo := new(MockCareRequestRepo)
	recipientRepo := new(MockCareRecipientRepo)
	uc := usecase.NewCareRequestUsecase(requestRepo, recipientRepo)

	recipientRepo.On("GetByID", mock.Anything, "recipient-1").Return(&domain.CareRecipient{
		ID:       "recipient-1",
		FamilyID: "family-other",
	}, nil)

	err := uc.CreateRequest(context.Background(), "family-1", &domain.CareRequest{
		RecipientID: "recipient-1",
		CareType:    domain.CareTypeHourly,
		BudgetMin:   10,
		BudgetMax:   20,
	})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRequestValidation(t *testing.T) {
	requestRepo := new(MockCareRequestRepo)
	recipientRepo := new(MockCareRecipientRepo)
	uc := usecase.NewCareRequestUsecase(requestRepo, recipientRepo)

	recipientRepo.On("GetByID", mock.Anything, "recipient-1").Return(&domain.CareRecipient{
		ID:       "recipient-1",
		FamilyID: "family-1",
	}, nil)

	cases := []struct {
		name string
		req  domain.CareRequest
	}{
		{"unknown care type", domain.CareRequest{RecipientID: "recipient-1", CareType: "overnight", BudgetMin: 10, BudgetMax: 20}},
		{"negative budget", domain.CareRequest{RecipientID: "recipient-1", CareType: domain.CareTypeHourly, BudgetMin: -5, BudgetMax: 20}},
		{"inverted budget range", domain.CareRequest{RecipientID: "recipient-1", CareType: domain.CareTypeHourly, BudgetMin: 30, BudgetMax: 20}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			err := uc.CreateRequest(context.Background(), "family-1", &req)

			var appErr *apperror.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.Code)
		})
	}
	requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRequestSetsOwnershipAndStatus(t *testing.T) {
	requestRepo := new(MockCareRequestRepo)
	recipientRepo := new(MockCareRecipientRepo)
	uc := usecase.NewCareRequestUsecase(requestRepo, recipientRepo)

	recipientRepo.On("GetByID", mock.Anything, "recipient-1").Return(&domain.CareRecipient{
		ID:       "recipient-1",
		FamilyID: "family-1",
	}, nil)
	requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CareRequest")).Return(nil)

	req := domain.CareRequest{
		RecipientID: "recipient-1",
		// Spoofed owner must be overwritten
		FamilyID:  "family-evil",
		CareType:  domain.CareTypeHourly,
		BudgetMin: 10,
		BudgetMax: 20,
	}
	err := uc.CreateRequest(context.Background(), "family-1", &req)

	assert.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "family-1", req.FamilyID)
	assert.Equal(t, domain.RequestStatusCreated, req.Status)
}

func TestGetRequestOwnership(t *testing.T) {
	requestRepo := new(MockCareRequestRepo)
	recipientRepo := new(MockCareRecipientRepo)
	uc := usecase.NewCareRequestUsecase(requestRepo, recipientRepo)

	requestRepo.On("GetByID", mock.Anything, "req-1").Return(&domain.CareRequest{
		ID:       "req-1",
		FamilyID: "family-1",
	}, nil)

	_, err := uc.GetRequest(context.Background(), "family-other", "req-1")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
}
