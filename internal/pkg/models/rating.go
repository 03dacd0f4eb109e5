package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a post-ride score from a rater to a ratee, unique per
// (ride, rater, ratee) and never mutated after creation.
type Rating struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RideID    uuid.UUID `json:"ride_id" db:"ride_id"`
	RaterID   uuid.UUID `json:"rater_id" db:"rater_id"`
	RateeID   uuid.UUID `json:"ratee_id" db:"ratee_id"`
	Score     int       `json:"score" db:"score"`
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SubmitRatingRequest is the payload for rating a driver after a ride
type SubmitRatingRequest struct {
	RideID  uuid.UUID `json:"ride_id"`
	Score   int       `json:"score"`
	Comment *string   `json:"comment"`
}

// PendingRatingRide is a finished ride awaiting the caller's rating
type PendingRatingRide struct {
	Ride   Ride          `json:"ride"`
	Driver DriverSummary `json:"driver"`
}
