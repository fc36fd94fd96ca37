package wire

import (
	"bus-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBus(r chi.Router, busHandler *adaptor.BusHandler) {
	// GET /buses - Bus master list (read-only here)
	r.Get("/buses", busHandler.ListBuses)
}
