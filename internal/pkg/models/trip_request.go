package models

import (
	"time"

	"github.com/google/uuid"
)

// TripRequestStatus represents the state of a private-ride solicitation
type TripRequestStatus string

const (
	TripRequestStatusOpen     TripRequestStatus = "OPEN"
	TripRequestStatusAccepted TripRequestStatus = "ACCEPTED"
	TripRequestStatusExpired  TripRequestStatus = "EXPIRED"
)

// TripRequestTTL is how long a trip request stays acceptable. Expiry is
// checked lazily at proposal-response time, never swept.
const TripRequestTTL = 24 * time.Hour

// TripRequest is a passenger's ad-hoc solicitation for a private ride,
// targeted at a specific driver through a Proposal.
type TripRequest struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	PassengerID   uuid.UUID         `json:"passenger_id" db:"passenger_id"`
	Origin        string            `json:"origin" db:"origin"`
	Destination   string            `json:"destination" db:"destination"`
	OriginLat     *float64          `json:"origin_lat,omitempty" db:"origin_lat"`
	OriginLng     *float64          `json:"origin_lng,omitempty" db:"origin_lng"`
	DestLat       *float64          `json:"dest_lat,omitempty" db:"dest_lat"`
	DestLng       *float64          `json:"dest_lng,omitempty" db:"dest_lng"`
	DepartureTime time.Time         `json:"departure_time" db:"departure_time"`
	SeatCount     int               `json:"seat_count" db:"seat_count"`
	MaxPrice      *float64          `json:"max_price,omitempty" db:"max_price"`
	Description   *string           `json:"description,omitempty" db:"description"`
	Status        TripRequestStatus `json:"status" db:"status"`
	ExpiresAt     time.Time         `json:"expires_at" db:"expires_at"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
	Passenger     *PassengerSummary `json:"passenger,omitempty" db:"-"`
	Proposals     []*Proposal       `json:"proposals,omitempty" db:"-"`
}

// Expired reports whether the request is past its expiration timestamp.
func (t *TripRequest) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Proposal is a driver's tri-state response to a trip request:
// Accepted nil means pending; once non-nil it is immutable.
type Proposal struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	TripRequestID uuid.UUID      `json:"trip_request_id" db:"trip_request_id"`
	DriverID      uuid.UUID      `json:"driver_id" db:"driver_id"`
	VehicleID     uuid.UUID      `json:"vehicle_id" db:"vehicle_id"`
	OfferedPrice  *float64       `json:"offered_price,omitempty" db:"offered_price"`
	Notes         *string        `json:"notes,omitempty" db:"notes"`
	Accepted      *bool          `json:"accepted" db:"accepted"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
	TripRequest   *TripRequest   `json:"trip_request,omitempty" db:"-"`
	Driver        *DriverSummary `json:"driver,omitempty" db:"-"`
	Vehicle       *Vehicle       `json:"vehicle,omitempty" db:"-"`
}

// Answered reports whether the proposal has already been responded to.
func (p *Proposal) Answered() bool {
	return p.Accepted != nil
}

// CreateTripRequestRequest is the payload for soliciting a private ride
type CreateTripRequestRequest struct {
	DriverID      uuid.UUID `json:"driver_id"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	OriginLat     *float64  `json:"origin_lat"`
	OriginLng     *float64  `json:"origin_lng"`
	DestLat       *float64  `json:"dest_lat"`
	DestLng       *float64  `json:"dest_lng"`
	DepartureTime time.Time `json:"departure_time"`
	SeatCount     int       `json:"seat_count"`
	MaxPrice      *float64  `json:"max_price"`
	Description   *string   `json:"description"`
}

// AcceptProposalRequest carries the driver's final terms when accepting
type AcceptProposalRequest struct {
	ProposalID uuid.UUID `json:"proposal_id"`
	FinalPrice *float64  `json:"final_price"`
	Notes      *string   `json:"notes"`
}

// RejectProposalRequest identifies the proposal being declined
type RejectProposalRequest struct {
	ProposalID uuid.UUID `json:"proposal_id"`
}
