package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind tags the event that produced a notification
type NotificationKind string

const (
	NotificationTripRequested       NotificationKind = "TRIP_REQUESTED"
	NotificationProposalAccepted    NotificationKind = "PROPOSAL_ACCEPTED"
	NotificationProposalRejected    NotificationKind = "PROPOSAL_REJECTED"
	NotificationReservationCreated  NotificationKind = "RESERVATION_CREATED"
	NotificationReservationApproved NotificationKind = "RESERVATION_APPROVED"
	NotificationReservationCanceled NotificationKind = "RESERVATION_CANCELLED"
	NotificationRideCancelled       NotificationKind = "RIDE_CANCELLED"
	NotificationRideFinished        NotificationKind = "RIDE_FINISHED"
)

// Notification is a persisted per-user event record
type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Kind      NotificationKind `json:"kind" db:"kind"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	RideID    *uuid.UUID       `json:"ride_id,omitempty" db:"ride_id"`
	Read      bool             `json:"read" db:"read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// NotificationEvent is the wire payload published to the notification sink.
// Delivery is best effort: producers log publish failures and move on.
type NotificationEvent struct {
	UserID  uuid.UUID        `json:"user_id"`
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	RideID  *uuid.UUID       `json:"ride_id,omitempty"`
}
