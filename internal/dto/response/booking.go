package response

import (
	"time"

	"bus-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	BusNo         string    `json:"busNo"`
	BusType       string    `json:"busType"`
	Fare          float64   `json:"fare"`
	Seat          int       `json:"seat"`
	PassengerName string    `json:"passengerName"`
	Mobile        string    `json:"mobile"`
	JourneyDate   string    `json:"journeyDate"`
	BookingTime   time.Time `json:"bookingTime"`
}

// BookingCreatedResponse is the /book success body. The message text is part
// of the wire contract; the id is additional.
type BookingCreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// OperationResponse is the legacy body for update/delete.
type OperationResponse struct {
	Success bool `json:"success"`
}

// BookingStatsResponse keeps the legacy aggregation shape: the group key is
// serialized as "_id".
type BookingStatsResponse struct {
	BusNo            string `json:"_id"`
	TotalBookedSeats int64  `json:"totalBookedSeats"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID.String(),
		BusNo:         b.BusNo,
		BusType:       b.BusType,
		Fare:          b.Fare,
		Seat:          b.Seat,
		PassengerName: b.PassengerName,
		Mobile:        b.Mobile,
		JourneyDate:   b.JourneyDate,
		BookingTime:   b.BookingTime,
	}
}

// BookingsToResponse never returns nil so empty results serialize as [].
func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, BookingToResponse(b))
	}
	return responses
}

func BookingStatsToResponse(counts []*entity.BusBookingCount) []BookingStatsResponse {
	responses := make([]BookingStatsResponse, 0, len(counts))
	for _, c := range counts {
		responses = append(responses, BookingStatsResponse{
			BusNo:            c.BusNo,
			TotalBookedSeats: c.TotalBookedSeats,
		})
	}
	return responses
}
