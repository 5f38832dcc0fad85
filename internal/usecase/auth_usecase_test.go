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

func TestAssignRolePersistsRequestedRole(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(userRepo)

	userRepo.On("GetByID", mock.Anything, "user-1").Return(&domain.User{
		ID:    "user-1",
		Email: "carer@example.com",
		Role:  domain.RoleFamily,
	}, nil)

	var updated *domain.User
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
		updated = args.Get(1).(*domain.User)
	})

	err := uc.AssignRole(adminCtx(), "user-1", domain.RoleCarer)

	assert.NoError(t, err)
	// The target user gets the requested role, not the caller's
	assert.Equal(t, domain.RoleCarer, updated.Role)
}

func TestAssignRoleRequiresAdmin(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(userRepo)

	familyCtx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleFamily)
	err := uc.AssignRole(familyCtx, "user-1", domain.RoleAdmin)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignRoleRejectsUnknownRole(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(userRepo)

	err := uc.AssignRole(adminCtx(), "user-1", "superuser")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignRoleUserNotFound(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(userRepo)

	userRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	err := uc.AssignRole(adminCtx(), "missing", domain.RoleCarer)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
