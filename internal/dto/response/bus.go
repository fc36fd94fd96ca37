package response

import "bus-booking/internal/data/entity"

type BusResponse struct {
	ID            string  `json:"id"`
	BusNo         string  `json:"busNo"`
	BusType       string  `json:"busType"`
	Source        string  `json:"source"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departureTime"`
	Fare          float64 `json:"fare"`
	TotalSeats    int     `json:"totalSeats"`
}

func BusToResponse(b *entity.Bus) BusResponse {
	return BusResponse{
		ID:            b.ID.String(),
		BusNo:         b.BusNo,
		BusType:       b.BusType,
		Source:        b.Source,
		Destination:   b.Destination,
		DepartureTime: b.DepartureTime,
		Fare:          b.Fare,
		TotalSeats:    b.TotalSeats,
	}
}

func BusesToResponse(buses []*entity.Bus) []BusResponse {
	responses := make([]BusResponse, 0, len(buses))
	for _, b := range buses {
		responses = append(responses, BusToResponse(b))
	}
	return responses
}
