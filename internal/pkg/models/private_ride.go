package models

import (
	"time"

	"github.com/google/uuid"
)

// PrivateRide is created only as the side effect of an accepted proposal.
// It is bound to exactly one passenger and one driver and reuses the ride
// status state machine.
type PrivateRide struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	DriverID      uuid.UUID         `json:"driver_id" db:"driver_id"`
	VehicleID     uuid.UUID         `json:"vehicle_id" db:"vehicle_id"`
	PassengerID   uuid.UUID         `json:"passenger_id" db:"passenger_id"`
	Origin        string            `json:"origin" db:"origin"`
	Destination   string            `json:"destination" db:"destination"`
	OriginLat     *float64          `json:"origin_lat,omitempty" db:"origin_lat"`
	OriginLng     *float64          `json:"origin_lng,omitempty" db:"origin_lng"`
	DestLat       *float64          `json:"dest_lat,omitempty" db:"dest_lat"`
	DestLng       *float64          `json:"dest_lng,omitempty" db:"dest_lng"`
	DepartureTime time.Time         `json:"departure_time" db:"departure_time"`
	TotalSeats    int               `json:"total_seats" db:"total_seats"`
	OccupiedSeats int               `json:"occupied_seats" db:"occupied_seats"`
	Price         *float64          `json:"price,omitempty" db:"price"`
	Notes         *string           `json:"notes,omitempty" db:"notes"`
	Status        RideStatus        `json:"status" db:"status"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
	Driver        *DriverSummary    `json:"driver,omitempty" db:"-"`
	Vehicle       *Vehicle          `json:"vehicle,omitempty" db:"-"`
	Passenger     *PassengerSummary `json:"passenger,omitempty" db:"-"`
}

// UpdateSeatCountRequest is the passenger's pre-departure seat adjustment
type UpdateSeatCountRequest struct {
	PrivateRideID uuid.UUID `json:"private_ride_id"`
	TotalSeats    int       `json:"total_seats"`
}
