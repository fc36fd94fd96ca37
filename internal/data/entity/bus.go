package entity

import "github.com/google/uuid"

// Bus is master data maintained outside this service. We only read it.
type Bus struct {
	ID            uuid.UUID `db:"id"`
	BusNo         string    `db:"bus_no"`
	BusType       string    `db:"bus_type"`
	Source        string    `db:"source"`
	Destination   string    `db:"destination"`
	DepartureTime string    `db:"departure_time"` // HH:MM
	Fare          float64   `db:"fare"`
	TotalSeats    int       `db:"total_seats"`
}
