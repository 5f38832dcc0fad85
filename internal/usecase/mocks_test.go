package usecase_test

import (
	"context"

	"go-care-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify mocks for the repository interfaces.

type MockCareRequestRepo struct {
	mock.Mock
}

func (m *MockCareRequestRepo) Create(ctx context.Context, req *domain.CareRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockCareRequestRepo) GetByID(ctx context.Context, id string) (*domain.CareRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CareRequest), args.Error(1)
}

func (m *MockCareRequestRepo) FetchByFamilyID(ctx context.Context, familyID string, limit, offset int) ([]domain.CareRequest, int64, error) {
	args := m.Called(ctx, familyID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.CareRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockCareRequestRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockCareRecipientRepo struct {
	mock.Mock
}

func (m *MockCareRecipientRepo) Create(ctx context.Context, recipient *domain.CareRecipient) error {
	return m.Called(ctx, recipient).Error(0)
}

func (m *MockCareRecipientRepo) GetByID(ctx context.Context, id string) (*domain.CareRecipient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CareRecipient), args.Error(1)
}

func (m *MockCareRecipientRepo) FetchByFamilyID(ctx context.Context, familyID string) ([]domain.CareRecipient, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CareRecipient), args.Error(1)
}

type MockCarerRepo struct {
	mock.Mock
}

func (m *MockCarerRepo) GetByUserID(ctx context.Context, userID string) (*domain.Carer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Carer), args.Error(1)
}

func (m *MockCarerRepo) Create(ctx context.Context, carer *domain.Carer) error {
	return m.Called(ctx, carer).Error(0)
}

func (m *MockCarerRepo) Update(ctx context.Context, carer *domain.Carer) error {
	return m.Called(ctx, carer).Error(0)
}

func (m *MockCarerRepo) UpdateApproval(ctx context.Context, userID string, status string) error {
	return m.Called(ctx, userID, status).Error(0)
}

func (m *MockCarerRepo) FetchByStatus(ctx context.Context, status string, limit, offset int) ([]domain.Carer, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Carer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCarerRepo) FindEligible(ctx context.Context, careType string) ([]domain.CarerCandidate, error) {
	args := m.Called(ctx, careType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CarerCandidate), args.Error(1)
}

type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) Create(ctx context.Context, match *domain.Match) error {
	return m.Called(ctx, match).Error(0)
}

func (m *MockMatchRepo) FetchByRequestID(ctx context.Context, careRequestID string) ([]domain.MatchWithCarer, error) {
	args := m.Called(ctx, careRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchWithCarer), args.Error(1)
}

func (m *MockMatchRepo) ExistsForRequest(ctx context.Context, careRequestID string) (bool, error) {
	args := m.Called(ctx, careRequestID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMatchRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockMatchRepo) FetchAll(ctx context.Context, limit, offset int) ([]domain.MatchWithCarer, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.MatchWithCarer), args.Get(1).(int64), args.Error(2)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepo) FetchByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepo) MarkRead(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
