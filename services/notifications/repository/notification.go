package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/constants"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/database"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// NotificationRepo implements notification persistence on Postgres, with a
// Redis cache in front of the per-user unread count.
type NotificationRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *NotificationRepo {
	return &NotificationRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

// CreateNotification inserts a notification and bumps the recipient's cached
// unread count.
func (r *NotificationRepo) CreateNotification(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, kind, title, message, ride_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		notification.ID, notification.UserID, notification.Kind, notification.Title,
		notification.Message, notification.RideID, notification.Read, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	r.bumpUnreadCount(ctx, notification.UserID)
	return nil
}

// ListByUser returns all of a user's notifications, newest first.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, kind, title, message, ride_id, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	notifications := []*models.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks a single notification as read. It only touches rows owned
// by userID and reports whether the notification exists for that user.
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID uuid.UUID, userID uuid.UUID) (bool, error) {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND user_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, notificationID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	r.invalidateUnreadCount(ctx, userID)
	return true, nil
}

// MarkAllRead marks every unread notification of the user as read.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE user_id = $1 AND read = FALSE
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	r.invalidateUnreadCount(ctx, userID)
	return nil
}

// CountUnread returns the number of unread notifications, served from Redis
// when the cached value is still warm.
func (r *NotificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	key := fmt.Sprintf(constants.KeyUnreadCount, userID)

	if cached, err := r.redis.Get(ctx, key); err == nil {
		if count, err := strconv.Atoi(cached); err == nil {
			return count, nil
		}
	}

	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	if err := r.redis.Set(ctx, key, strconv.Itoa(count), constants.TTLUnreadCount); err != nil {
		logger.Warn("failed to cache unread count", logger.Err(err))
	}
	return count, nil
}

func (r *NotificationRepo) invalidateUnreadCount(ctx context.Context, userID uuid.UUID) {
	key := fmt.Sprintf(constants.KeyUnreadCount, userID)
	if err := r.redis.Delete(ctx, key); err != nil {
		logger.Warn("failed to invalidate unread count cache", logger.Err(err))
	}
}

// bumpUnreadCount increments the cached counter when one is warm. On a cache
// miss the next CountUnread recomputes from the table.
func (r *NotificationRepo) bumpUnreadCount(ctx context.Context, userID uuid.UUID) {
	key := fmt.Sprintf(constants.KeyUnreadCount, userID)
	if _, err := r.redis.Get(ctx, key); err != nil {
		return
	}
	if _, err := r.redis.Incr(ctx, key); err != nil {
		logger.Warn("failed to bump unread count cache", logger.Err(err))
	}
}
