package domain

import "time"

// VenueSettings is a singleton record describing the gym location copied onto
// bookings with gym attendance.
type VenueSettings struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}
