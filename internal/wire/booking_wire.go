package wire

import (
	"bus-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireBooking mounts the ledger routes. Paths are the legacy frontend
// contract and must not change.
func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /book - Create a booking (rejects duplicate seats)
	r.Post("/book", bookingHandler.Book)

	// GET /bookings - All bookings, unfiltered
	r.Get("/bookings", bookingHandler.ListBookings)

	// GET /searchBookings?busNo=&journeyDate= - Filtered bookings
	r.Get("/searchBookings", bookingHandler.SearchBookings)

	// PUT /update - Reassign the seat of a booking
	r.Put("/update", bookingHandler.UpdateBooking)

	// DELETE /delete/{id} - Remove a booking
	r.Delete("/delete/{id}", bookingHandler.DeleteBooking)

	// GET /stats - Booking counts grouped by bus
	r.Get("/stats", bookingHandler.Stats)
}
