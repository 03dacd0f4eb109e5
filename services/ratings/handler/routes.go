package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/middleware"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings"
	httpHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings/handler/http"
)

// Handler wires the rating HTTP handlers
type Handler struct {
	ratingsHTTP *httpHandler.RatingsHandler
	cfg         *models.Config
}

// NewHandler creates a new ratings handler
func NewHandler(ratingUC ratings.RatingUC, cfg *models.Config) *Handler {
	return &Handler{
		ratingsHTTP: httpHandler.NewRatingsHandler(ratingUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all rating HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	group := e.Group("/ratings", auth)
	group.POST("", h.ratingsHTTP.SubmitRating)
	group.GET("/pending", h.ratingsHTTP.ListPendingRating)
}
