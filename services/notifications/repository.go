package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// NotificationRepo defines the interface for notification persistence.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications NotificationRepo
type NotificationRepo interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID, userID uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}
