package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/apperrors"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/rides/mocks"
)

func newRequestContext(method, target, body string, callerID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", callerID)
	c.Set("user_role", models.RoleDriver)
	return c, rec
}

func TestCreateRide_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	callerID := uuid.New()
	body := `{"vehicle_id":"` + uuid.New().String() + `","origin":"Campus","destination":"Downtown","departure_time":"` +
		time.Now().Add(time.Hour).Format(time.RFC3339) + `","total_seats":4,"kind":"RECURRING"}`
	c, rec := newRequestContext(http.MethodPost, "/rides", body, callerID)

	mockUC.EXPECT().
		CreateRide(gomock.Any(), callerID, gomock.Any()).
		Return(&models.Ride{ID: uuid.New(), Status: models.RideStatusScheduled}, nil)

	err := handler.CreateRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Ride created successfully", response["message"])
}

func TestCreateRide_HandlerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	callerID := uuid.New()
	c, rec := newRequestContext(http.MethodPost, "/rides", `{"total_seats":2}`, callerID)

	mockUC.EXPECT().
		CreateRide(gomock.Any(), callerID, gomock.Any()).
		Return(nil, apperrors.Forbidden("only drivers can offer rides"))

	err := handler.CreateRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "only drivers can offer rides", response["error"])
}

func TestCancelRide_HandlerConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	callerID := uuid.New()
	rideID := uuid.New()
	c, rec := newRequestContext(http.MethodPost, "/rides/"+rideID.String()+"/cancel", "", callerID)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	mockUC.EXPECT().
		CancelRide(gomock.Any(), callerID, rideID).
		Return(apperrors.Conflict("ride already finished or cancelled"))

	err := handler.CancelRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelRide_InvalidRideID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	c, rec := newRequestContext(http.MethodPost, "/rides/not-a-uuid/cancel", "", uuid.New())
	c.SetParamNames("rideID")
	c.SetParamValues("not-a-uuid")

	err := handler.CancelRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRide_HandlerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	callerID := uuid.New()
	rideID := uuid.New()
	c, rec := newRequestContext(http.MethodGet, "/rides/"+rideID.String(), "", callerID)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	mockUC.EXPECT().
		GetRide(gomock.Any(), callerID, rideID).
		Return(nil, apperrors.NotFound("ride not found"))

	err := handler.GetRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRides_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	c, rec := newRequestContext(http.MethodGet, "/rides", "", uuid.New())

	mockUC.EXPECT().
		ListRides(gomock.Any()).
		Return([]*models.Ride{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	err := handler.ListRides(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
}
