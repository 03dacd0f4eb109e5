package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole distinguishes drivers from passengers
type UserRole string

const (
	RoleDriver    UserRole = "DRIVER"
	RolePassenger UserRole = "PASSENGER"
)

// User represents a registered user. Drivers additionally own a
// DriverProfile; for passengers the field is nil.
type User struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Email         string         `json:"email" db:"email"`
	Password      string         `json:"-" db:"password"`
	Phone         string         `json:"phone,omitempty" db:"phone"`
	Role          UserRole       `json:"role" db:"role"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
	DriverProfile *DriverProfile `json:"driver_profile,omitempty" db:"-"`
}

// IsDriver reports whether the user is a driver with a profile attached.
func (u *User) IsDriver() bool {
	return u.Role == RoleDriver && u.DriverProfile != nil
}

// DriverProfile holds driver-specific data. AverageRating and TotalRatings
// are derived aggregates recomputed by the ratings service, never set by
// clients.
type DriverProfile struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	LicenseNumber string    `json:"license_number" db:"license_number"`
	AverageRating float64   `json:"average_rating" db:"average_rating"`
	TotalRatings  int       `json:"total_ratings" db:"total_ratings"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// RegisterPassengerRequest is the payload for passenger registration
type RegisterPassengerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// RegisterDriverRequest is the payload for driver registration
type RegisterDriverRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}

// UpdateProfileRequest is the partial-update payload for the caller's
// account. Nil fields are left unchanged; LicenseNumber is honored for
// drivers only.
type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	Phone         *string `json:"phone"`
	LicenseNumber *string `json:"license_number"`
}

// LoginRequest is the payload for email/password authentication
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued JWT and its subject
type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	Role      UserRole  `json:"role"`
	ExpiresAt int64     `json:"expires_at"`
}
