package entity

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID            uuid.UUID `db:"id"`
	BusNo         string    `db:"bus_no"`
	BusType       string    `db:"bus_type"`
	Fare          float64   `db:"fare"`
	Seat          int       `db:"seat"`
	PassengerName string    `db:"passenger_name"`
	Mobile        string    `db:"mobile"`
	JourneyDate   string    `db:"journey_date"`
	BookingTime   time.Time `db:"booking_time"`
}

// BusBookingCount is one row of the per-bus booking aggregation.
type BusBookingCount struct {
	BusNo            string `db:"bus_no"`
	TotalBookedSeats int64  `db:"total_booked_seats"`
}
