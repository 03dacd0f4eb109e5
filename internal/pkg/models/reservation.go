package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the state of a seat reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusFinished  ReservationStatus = "FINISHED"
)

// Reservation is a single passenger's seat claim against a ride.
// At most one reservation exists per (ride, passenger) pair.
type Reservation struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	RideID      uuid.UUID         `json:"ride_id" db:"ride_id"`
	PassengerID uuid.UUID         `json:"passenger_id" db:"passenger_id"`
	SeatCount   int               `json:"seat_count" db:"seat_count"`
	Notes       *string           `json:"notes,omitempty" db:"notes"`
	Status      ReservationStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
	Passenger   *PassengerSummary `json:"passenger,omitempty" db:"-"`
}

// PassengerSummary is the passenger projection embedded in responses
type PassengerSummary struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Name  string    `json:"name" db:"name"`
	Email string    `json:"email" db:"email"`
}

// CreateReservationRequest is the payload for reserving seats on a ride
type CreateReservationRequest struct {
	RideID    uuid.UUID `json:"ride_id"`
	SeatCount int       `json:"seat_count"`
	Notes     *string   `json:"notes"`
}
