package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// NotificationUC defines the interface for the notification sink:
// events arrive over NATS and are read back over HTTP.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications NotificationUC
type NotificationUC interface {
	RecordNotification(ctx context.Context, event models.NotificationEvent) error
	ListNotifications(ctx context.Context, callerID uuid.UUID) ([]*models.Notification, error)
	MarkRead(ctx context.Context, callerID uuid.UUID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, callerID uuid.UUID) error
	UnreadCount(ctx context.Context, callerID uuid.UUID) (int, error)
}
