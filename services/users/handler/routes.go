package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/middleware"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/users"
	httpHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/users/handler/http"
)

// Handler wires the users HTTP handlers
type Handler struct {
	usersHTTP *httpHandler.UsersHandler
	cfg       *models.Config
}

// NewHandler creates a new users handler
func NewHandler(userUC users.UserUC, cfg *models.Config) *Handler {
	return &Handler{
		usersHTTP: httpHandler.NewUsersHandler(userUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all user HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	e.POST("/auth/register/passenger", h.usersHTTP.RegisterPassenger)
	e.POST("/auth/register/driver", h.usersHTTP.RegisterDriver)
	e.POST("/auth/login", h.usersHTTP.Login)

	e.GET("/users/me", h.usersHTTP.GetProfile, auth)
	e.PATCH("/users/me", h.usersHTTP.UpdateProfile, auth)
	e.DELETE("/users/me", h.usersHTTP.DeleteAccount, auth)
	e.GET("/drivers", h.usersHTTP.ListDrivers)

	vehicles := e.Group("/vehicles", auth)
	vehicles.POST("", h.usersHTTP.AddVehicle)
	vehicles.GET("", h.usersHTTP.ListVehicles)
	vehicles.PATCH("/:vehicleID", h.usersHTTP.EditVehicle)
	vehicles.DELETE("/:vehicleID", h.usersHTTP.DeleteVehicle)
}
