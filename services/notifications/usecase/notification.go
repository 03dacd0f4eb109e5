package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/apperrors"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications"
)

type notificationUC struct {
	cfg              *models.Config
	notificationRepo notifications.NotificationRepo
}

// NewNotificationUC creates a new notification usecase
func NewNotificationUC(cfg *models.Config, notificationRepo notifications.NotificationRepo) notifications.NotificationUC {
	return &notificationUC{
		cfg:              cfg,
		notificationRepo: notificationRepo,
	}
}

// RecordNotification persists an event received from the message bus.
func (uc *notificationUC) RecordNotification(ctx context.Context, event models.NotificationEvent) error {
	if event.UserID == uuid.Nil {
		return apperrors.InvalidInput("notification event has no recipient")
	}
	if event.Kind == "" {
		return apperrors.InvalidInput("notification event has no kind")
	}

	notification := &models.Notification{
		ID:        uuid.New(),
		UserID:    event.UserID,
		Kind:      event.Kind,
		Title:     event.Title,
		Message:   event.Message,
		RideID:    event.RideID,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := uc.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// ListNotifications returns the caller's notifications, newest first.
func (uc *notificationUC) ListNotifications(ctx context.Context, callerID uuid.UUID) ([]*models.Notification, error) {
	list, err := uc.notificationRepo.ListByUser(ctx, callerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return list, nil
}

// MarkRead marks one of the caller's notifications as read. Notifications
// owned by other users are reported as not found.
func (uc *notificationUC) MarkRead(ctx context.Context, callerID uuid.UUID, notificationID uuid.UUID) error {
	ok, err := uc.notificationRepo.MarkRead(ctx, notificationID, callerID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !ok {
		return apperrors.NotFound("notification not found")
	}
	return nil
}

// MarkAllRead marks every unread notification of the caller as read.
func (uc *notificationUC) MarkAllRead(ctx context.Context, callerID uuid.UUID) error {
	if err := uc.notificationRepo.MarkAllRead(ctx, callerID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// UnreadCount returns how many of the caller's notifications are unread.
func (uc *notificationUC) UnreadCount(ctx context.Context, callerID uuid.UUID) (int, error) {
	count, err := uc.notificationRepo.CountUnread(ctx, callerID)
	if err != nil {
		return 0, apperrors.Internal(err)
	}
	return count, nil
}
