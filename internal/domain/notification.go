package domain

import (
	"context"
	"time"
)

// Notification types
const (
	NotificationTypeNewMatch = "new_match"
)

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Link      string    `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	FetchByUserID(ctx context.Context, userID string, limit, offset int) ([]Notification, int64, error)
	MarkRead(ctx context.Context, id string, userID string) error
}

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID string, page, pageSize int) ([]Notification, int64, error)
	MarkRead(ctx context.Context, userID, id string) error
}
