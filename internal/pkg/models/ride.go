package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle state of a ride. The only legal
// transitions are SCHEDULED -> IN_PROGRESS -> FINISHED and
// SCHEDULED/IN_PROGRESS -> CANCELLED; FINISHED and CANCELLED are terminal.
type RideStatus string

const (
	RideStatusScheduled  RideStatus = "SCHEDULED"
	RideStatusInProgress RideStatus = "IN_PROGRESS"
	RideStatusFinished   RideStatus = "FINISHED"
	RideStatusCancelled  RideStatus = "CANCELLED"
)

// Terminal reports whether no further status transition is allowed.
func (s RideStatus) Terminal() bool {
	return s == RideStatusFinished || s == RideStatusCancelled
}

// RideKind distinguishes recurring public rides from private ones
type RideKind string

const (
	RideKindRecurring RideKind = "RECURRING"
	RideKindPrivate   RideKind = "PRIVATE"
)

// Weekday values used by recurrence patterns
type Weekday string

const (
	WeekdaySunday    Weekday = "SUNDAY"
	WeekdayMonday    Weekday = "MONDAY"
	WeekdayTuesday   Weekday = "TUESDAY"
	WeekdayWednesday Weekday = "WEDNESDAY"
	WeekdayThursday  Weekday = "THURSDAY"
	WeekdayFriday    Weekday = "FRIDAY"
	WeekdaySaturday  Weekday = "SATURDAY"
)

// ValidWeekday reports whether d is one of the seven recurrence day values.
func ValidWeekday(d Weekday) bool {
	switch d {
	case WeekdaySunday, WeekdayMonday, WeekdayTuesday, WeekdayWednesday,
		WeekdayThursday, WeekdayFriday, WeekdaySaturday:
		return true
	}
	return false
}

// Ride represents a scheduled transport offering from one driver.
// OccupiedSeats is mutated only by the reservations service and always
// satisfies 0 <= OccupiedSeats <= TotalSeats.
type Ride struct {
	ID            uuid.UUID          `json:"id" db:"id"`
	DriverID      uuid.UUID          `json:"driver_id" db:"driver_id"`
	VehicleID     uuid.UUID          `json:"vehicle_id" db:"vehicle_id"`
	Origin        string             `json:"origin" db:"origin"`
	Destination   string             `json:"destination" db:"destination"`
	OriginLat     *float64           `json:"origin_lat,omitempty" db:"origin_lat"`
	OriginLng     *float64           `json:"origin_lng,omitempty" db:"origin_lng"`
	DestLat       *float64           `json:"dest_lat,omitempty" db:"dest_lat"`
	DestLng       *float64           `json:"dest_lng,omitempty" db:"dest_lng"`
	DepartureTime time.Time          `json:"departure_time" db:"departure_time"`
	TotalSeats    int                `json:"total_seats" db:"total_seats"`
	OccupiedSeats int                `json:"occupied_seats" db:"occupied_seats"`
	Price         *float64           `json:"price,omitempty" db:"price"`
	Notes         *string            `json:"notes,omitempty" db:"notes"`
	Status        RideStatus         `json:"status" db:"status"`
	Kind          RideKind           `json:"kind" db:"kind"`
	CreatedAt     time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" db:"updated_at"`
	Recurrence    *RecurrencePattern `json:"recurrence,omitempty" db:"-"`
	Driver        *DriverSummary     `json:"driver,omitempty" db:"-"`
	Vehicle       *Vehicle           `json:"vehicle,omitempty" db:"-"`
	Reservations  []*Reservation     `json:"reservations,omitempty" db:"-"`
}

// AvailableSeats returns the number of seats still reservable.
func (r *Ride) AvailableSeats() int {
	return r.TotalSeats - r.OccupiedSeats
}

// RecurrencePattern is the sub-record owned by a RECURRING ride
type RecurrencePattern struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	RideID    uuid.UUID  `json:"ride_id" db:"ride_id"`
	Days      []Weekday  `json:"days" db:"-"`
	StartDate time.Time  `json:"start_date" db:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" db:"end_date"`
}

// DriverSummary is the driver projection embedded in ride responses
type DriverSummary struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	AverageRating float64   `json:"average_rating" db:"average_rating"`
	TotalRatings  int       `json:"total_ratings" db:"total_ratings"`
}

// CreateRideRequest is the payload for creating a ride
type CreateRideRequest struct {
	VehicleID     uuid.UUID `json:"vehicle_id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	OriginLat     *float64  `json:"origin_lat"`
	OriginLng     *float64  `json:"origin_lng"`
	DestLat       *float64  `json:"dest_lat"`
	DestLng       *float64  `json:"dest_lng"`
	DepartureTime time.Time `json:"departure_time"`
	TotalSeats    int       `json:"total_seats"`
	Price         *float64  `json:"price"`
	Notes         *string   `json:"notes"`
	Kind          RideKind  `json:"kind"`

	// Recurrence fields, only honored when Kind is RECURRING
	Days      []Weekday  `json:"days"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// SearchRidesRequest carries the optional ride search filters
type SearchRidesRequest struct {
	Origin      string     `json:"origin" query:"origin"`
	Destination string     `json:"destination" query:"destination"`
	Date        *time.Time `json:"date" query:"date"`
}
