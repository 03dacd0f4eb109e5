package nats

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications/mocks"
)

func TestHandleNotificationCreated_RecordsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := &Handler{notificationUC: mockUC}

	event := models.NotificationEvent{
		UserID:  uuid.New(),
		Kind:    models.NotificationReservationCreated,
		Title:   "New reservation",
		Message: "A passenger reserved a seat on your ride",
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	mockUC.EXPECT().RecordNotification(gomock.Any(), event).Return(nil)

	assert.NoError(t, h.handleNotificationCreated(payload))
}

func TestHandleNotificationCreated_MalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := &Handler{notificationUC: mockUC}

	assert.Error(t, h.handleNotificationCreated([]byte("not json")))
}
