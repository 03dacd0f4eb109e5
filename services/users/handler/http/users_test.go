package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/apperrors"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/users/mocks"
)

func newRequestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterDriver_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUsersHandler(mockUC)

	body := `{"name":"Dan","email":"dan@example.com","password":"hunter2secret","license_number":"CNH-12345"}`
	c, rec := newRequestContext(http.MethodPost, "/auth/register/driver", body)

	mockUC.EXPECT().
		RegisterDriver(gomock.Any(), gomock.Any()).
		Return(&models.User{ID: uuid.New(), Role: models.RoleDriver}, nil)

	err := handler.RegisterDriver(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestLogin_HandlerInvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUsersHandler(mockUC)

	body := `{"email":"ana@example.com","password":"wrong"}`
	c, rec := newRequestContext(http.MethodPost, "/auth/login", body)

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Forbidden("invalid email or password"))

	err := handler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetProfile_HandlerUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUsersHandler(mockUC)

	c, rec := newRequestContext(http.MethodGet, "/users/me", "")

	err := handler.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddVehicle_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUsersHandler(mockUC)

	callerID := uuid.New()
	body := `{"plate":"ABC1234","brand":"Fiat","model":"Uno","capacity":4}`
	c, rec := newRequestContext(http.MethodPost, "/vehicles", body)
	c.Set("user_id", callerID)

	mockUC.EXPECT().
		AddVehicle(gomock.Any(), callerID, gomock.Any()).
		Return(&models.Vehicle{ID: uuid.New(), Capacity: 4}, nil)

	err := handler.AddVehicle(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdateProfile_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUsersHandler(mockUC)

	callerID := uuid.New()
	body := `{"name":"Ana Clara"}`
	c, rec := newRequestContext(http.MethodPatch, "/users/me", body)
	c.Set("user_id", callerID)

	mockUC.EXPECT().
		UpdateProfile(gomock.Any(), callerID, gomock.Any()).
		Return(&models.User{ID: callerID, Name: "Ana Clara"}, nil)

	err := handler.UpdateProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteAccount_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUsersHandler(mockUC)

	callerID := uuid.New()
	c, rec := newRequestContext(http.MethodDelete, "/users/me", "")
	c.Set("user_id", callerID)

	mockUC.EXPECT().DeleteAccount(gomock.Any(), callerID).Return(nil)

	err := handler.DeleteAccount(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEditVehicle_HandlerInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUsersHandler(mockUC)

	c, rec := newRequestContext(http.MethodPatch, "/vehicles/not-a-uuid", `{"plate":"XYZ9876"}`)
	c.Set("user_id", uuid.New())
	c.SetParamNames("vehicleID")
	c.SetParamValues("not-a-uuid")

	err := handler.EditVehicle(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
