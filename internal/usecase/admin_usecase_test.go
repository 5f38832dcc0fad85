package usecase_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"go-care-backend/internal/domain"
	"go-care-backend/internal/usecase"
	"go-care-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
)

func adminCtx() context.Context {
	return context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
}

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	carerRepo := new(MockCarerRepo)
	matchRepo := new(MockMatchRepo)
	uc := usecase.NewAdminUsecase(carerRepo, matchRepo)

	familyCtx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleFamily)

	_, _, err := uc.ListCarers(familyCtx, "", 1, 20)
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)

	assert.Error(t, uc.ApproveCarer(familyCtx, "carer-1"))
	assert.Error(t, uc.RejectCarer(familyCtx, "carer-1"))

	_, err = uc.ExportMatchReport(familyCtx)
	assert.Error(t, err)

	carerRepo.AssertNotCalled(t, "FetchByStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	matchRepo.AssertNotCalled(t, "FetchAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestListCarersDefaultsToPending(t *testing.T) {
	carerRepo := new(MockCarerRepo)
	matchRepo := new(MockMatchRepo)
	uc := usecase.NewAdminUsecase(carerRepo, matchRepo)

	carerRepo.On("FetchByStatus", mock.Anything, domain.CarerStatusPending, 20, 0).
		Return([]domain.Carer{{UserID: "carer-1"}}, int64(1), nil)

	carers, total, err := uc.ListCarers(adminCtx(), "", 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, carers, 1)
}

func TestExportMatchReportProducesWorkbook(t *testing.T) {
	carerRepo := new(MockCarerRepo)
	matchRepo := new(MockMatchRepo)
	uc := usecase.NewAdminUsecase(carerRepo, matchRepo)

	avg := 4.6
	matchRepo.On("FetchAll", mock.Anything, mock.Anything, mock.Anything).Return([]domain.MatchWithCarer{
		{
			Match: domain.Match{
				ID:            "m-1",
				CareRequestID: "req-1",
				Score:         82.5,
				Status:        domain.MatchStatusSuggested,
				CreatedAt:     time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
			},
			CarerName:       "Jane Doe",
			Specializations: []string{"dementia", "elderly_care"},
			YearsExperience: 8,
			AvgRating:       &avg,
		},
	}, int64(1), nil)

	data, err := uc.ExportMatchReport(adminCtx())
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Matches", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Match ID", header)

	name, err := f.GetCellValue("Matches", "C2")
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", name)

	rating, err := f.GetCellValue("Matches", "H2")
	assert.NoError(t, err)
	assert.Equal(t, "4.6", rating)
}
