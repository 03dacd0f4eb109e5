package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/middleware"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	nrpkg "github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/newrelic"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/utils"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/users"
)

// UsersHandler handles HTTP requests for accounts and vehicles
type UsersHandler struct {
	userUC users.UserUC
}

// NewUsersHandler creates a new users HTTP handler
func NewUsersHandler(userUC users.UserUC) *UsersHandler {
	return &UsersHandler{
		userUC: userUC,
	}
}

// RegisterPassenger creates a passenger account
func (h *UsersHandler) RegisterPassenger(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.RegisterPassenger")

	var req models.RegisterPassengerRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	user, err := h.userUC.RegisterPassenger(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to register passenger", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Passenger registered successfully", user)
}

// RegisterDriver creates a driver account with its profile
func (h *UsersHandler) RegisterDriver(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.RegisterDriver")

	var req models.RegisterDriverRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	user, err := h.userUC.RegisterDriver(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to register driver", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Driver registered successfully", user)
}

// Login verifies credentials and issues a JWT
func (h *UsersHandler) Login(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Login")

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	auth, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", auth)
}

// GetProfile retrieves the caller's own account
func (h *UsersHandler) GetProfile(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.GetProfile")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile applies a partial update to the caller's own account
func (h *UsersHandler) UpdateProfile(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.UpdateProfile")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), callerID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// DeleteAccount removes the caller's own account
func (h *UsersHandler) DeleteAccount(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.DeleteAccount")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.userUC.DeleteAccount(c.Request().Context(), callerID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account deleted successfully", nil)
}

// ListDrivers lists all drivers for browsing
func (h *UsersHandler) ListDrivers(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.ListDrivers")

	driverList, err := h.userUC.ListDrivers(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", driverList)
}

// AddVehicle registers a vehicle under the caller's driver profile
func (h *UsersHandler) AddVehicle(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.AddVehicle")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AddVehicleRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	vehicle, err := h.userUC.AddVehicle(c.Request().Context(), callerID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered successfully", vehicle)
}

// EditVehicle applies a partial update to one of the caller's vehicles
func (h *UsersHandler) EditVehicle(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.EditVehicle")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.EditVehicleRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	vehicleID, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}
	req.VehicleID = vehicleID

	vehicle, err := h.userUC.EditVehicle(c.Request().Context(), callerID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// ListVehicles lists the caller's registered vehicles
func (h *UsersHandler) ListVehicles(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.ListVehicles")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	vehicleList, err := h.userUC.ListVehicles(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", vehicleList)
}

// DeleteVehicle removes one of the caller's vehicles
func (h *UsersHandler) DeleteVehicle(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.DeleteVehicle")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	vehicleID, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	if err := h.userUC.DeleteVehicle(c.Request().Context(), callerID, vehicleID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle deleted successfully", nil)
}
