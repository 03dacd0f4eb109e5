package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/middleware"
	nrpkg "github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/newrelic"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/utils"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications"
)

// NotificationsHandler handles HTTP requests for notification operations
type NotificationsHandler struct {
	notificationUC notifications.NotificationUC
}

// NewNotificationsHandler creates a new notification HTTP handler
func NewNotificationsHandler(notificationUC notifications.NotificationUC) *NotificationsHandler {
	return &NotificationsHandler{
		notificationUC: notificationUC,
	}
}

// ListNotifications lists the caller's notifications, newest first
func (h *NotificationsHandler) ListNotifications(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.ListNotifications")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.notificationUC.ListNotifications(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", list)
}

// MarkRead marks one of the caller's notifications as read
func (h *NotificationsHandler) MarkRead(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.MarkRead")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	notificationID, err := uuid.Parse(c.Param("notificationID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification ID")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), callerID, notificationID); err != nil {
		logger.Error("Failed to mark notification read",
			logger.String("user_id", callerID.String()),
			logger.String("notification_id", notificationID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead marks all of the caller's notifications as read
func (h *NotificationsHandler) MarkAllRead(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.MarkAllRead")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.notificationUC.MarkAllRead(c.Request().Context(), callerID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notifications marked as read", nil)
}

// UnreadCount returns the caller's unread notification count
func (h *NotificationsHandler) UnreadCount(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.UnreadCount")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Unread count retrieved successfully", map[string]int{"unread": count})
}
