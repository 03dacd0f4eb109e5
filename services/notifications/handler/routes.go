package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/middleware"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications"
	httpHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications/handler/http"
)

// Handler wires the notification HTTP handlers
type Handler struct {
	notificationsHTTP *httpHandler.NotificationsHandler
	cfg               *models.Config
}

// NewHandler creates a new notifications handler
func NewHandler(notificationUC notifications.NotificationUC, cfg *models.Config) *Handler {
	return &Handler{
		notificationsHTTP: httpHandler.NewNotificationsHandler(notificationUC),
		cfg:               cfg,
	}
}

// RegisterRoutes registers all notification HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	group := e.Group("/notifications", auth)
	group.GET("", h.notificationsHTTP.ListNotifications)
	group.GET("/unread-count", h.notificationsHTTP.UnreadCount)
	group.POST("/read-all", h.notificationsHTTP.MarkAllRead)
	group.POST("/:notificationID/read", h.notificationsHTTP.MarkRead)
}
