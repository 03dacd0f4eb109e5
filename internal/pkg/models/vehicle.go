package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle belongs to exactly one driver profile. Images are ordered by
// Position ascending.
type Vehicle struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	DriverID  uuid.UUID       `json:"driver_id" db:"driver_id"`
	Plate     string          `json:"plate" db:"plate"`
	Brand     string          `json:"brand" db:"brand"`
	Model     string          `json:"model" db:"model"`
	Color     string          `json:"color,omitempty" db:"color"`
	Capacity  int             `json:"capacity" db:"capacity"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	Images    []*VehicleImage `json:"images,omitempty" db:"-"`
}

// VehicleImageKind marks the cover photo versus gallery photos
type VehicleImageKind string

const (
	VehicleImagePrimary   VehicleImageKind = "PRIMARY"
	VehicleImageSecondary VehicleImageKind = "SECONDARY"
)

// VehicleImage is one photo attached to a vehicle
type VehicleImage struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	VehicleID uuid.UUID        `json:"vehicle_id" db:"vehicle_id"`
	URL       string           `json:"url" db:"url"`
	Kind      VehicleImageKind `json:"kind" db:"kind"`
	Position  int              `json:"position" db:"position"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// VehicleImageInput is the image payload inside vehicle requests. Kind
// defaults to SECONDARY when omitted.
type VehicleImageInput struct {
	URL      string           `json:"url"`
	Kind     VehicleImageKind `json:"kind"`
	Position int              `json:"position"`
}

// AddVehicleRequest is the payload for registering a vehicle
type AddVehicleRequest struct {
	Plate    string              `json:"plate"`
	Brand    string              `json:"brand"`
	Model    string              `json:"model"`
	Color    string              `json:"color"`
	Capacity int                 `json:"capacity"`
	Images   []VehicleImageInput `json:"images"`
}

// EditVehicleRequest is the partial-update payload for a vehicle. Nil
// fields are left unchanged; a non-nil Images slice replaces the whole
// gallery.
type EditVehicleRequest struct {
	VehicleID uuid.UUID           `json:"-"`
	Plate     *string             `json:"plate"`
	Brand     *string             `json:"brand"`
	Model     *string             `json:"model"`
	Color     *string             `json:"color"`
	Capacity  *int                `json:"capacity"`
	Images    []VehicleImageInput `json:"images"`
}
