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
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings/mocks"
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
	return c, rec
}

func TestSubmitRating_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRatingUC(ctrl)
	handler := NewRatingsHandler(mockUC)

	callerID := uuid.New()
	rideID := uuid.New()
	body := `{"ride_id":"` + rideID.String() + `","score":5}`
	c, rec := newRequestContext(http.MethodPost, "/ratings", body, callerID)

	mockUC.EXPECT().
		SubmitRating(gomock.Any(), callerID, gomock.Any()).
		Return(&models.Rating{ID: uuid.New(), RideID: rideID, Score: 5}, nil)

	err := handler.SubmitRating(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestSubmitRating_HandlerDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRatingUC(ctrl)
	handler := NewRatingsHandler(mockUC)

	callerID := uuid.New()
	body := `{"ride_id":"` + uuid.New().String() + `","score":4}`
	c, rec := newRequestContext(http.MethodPost, "/ratings", body, callerID)

	mockUC.EXPECT().
		SubmitRating(gomock.Any(), callerID, gomock.Any()).
		Return(nil, apperrors.Conflict("you already rated this ride"))

	err := handler.SubmitRating(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListPendingRating_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRatingUC(ctrl)
	handler := NewRatingsHandler(mockUC)

	callerID := uuid.New()
	c, rec := newRequestContext(http.MethodGet, "/ratings/pending", "", callerID)

	mockUC.EXPECT().
		ListPendingRating(gomock.Any(), callerID).
		Return([]*models.PendingRatingRide{}, nil)

	err := handler.ListPendingRating(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
