package request

// CreateBookingRequest carries the legacy /book body. Field names follow the
// existing frontend contract (camelCase).
type CreateBookingRequest struct {
	BusNo         string  `json:"busNo" validate:"required"`
	BusType       string  `json:"busType" validate:"required"`
	Fare          float64 `json:"fare" validate:"required"`
	Seat          int     `json:"seat" validate:"required,gt=0"`
	PassengerName string  `json:"passengerName" validate:"required"`
	Mobile        string  `json:"mobile" validate:"required"`
	JourneyDate   string  `json:"journeyDate" validate:"required"`
}

// UpdateBookingRequest reassigns the seat of an existing booking.
type UpdateBookingRequest struct {
	ID   string `json:"id" validate:"required"`
	Seat int    `json:"seat" validate:"required,gt=0"`
}
