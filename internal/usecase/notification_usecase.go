package usecase

import (
	"context"
	"go-care-backend/internal/domain"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

func NewNotificationUsecase(notificationRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notificationRepo: notificationRepo}
}

func (u *notificationUsecase) ListNotifications(ctx context.Context, userID string, page, pageSize int) ([]domain.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	return u.notificationRepo.FetchByUserID(ctx, userID, pageSize, offset)
}

func (u *notificationUsecase) MarkRead(ctx context.Context, userID, id string) error {
	// Repo scopes the update to the owning user, so no extra ownership check
	return u.notificationRepo.MarkRead(ctx, id, userID)
}
