package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Book handles POST /book
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.BookingCreatedResponse{
		Message: "Booking successful",
		ID:      booking.ID,
	})
}

// ListBookings handles GET /bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, bookings)
}

// SearchBookings handles GET /searchBookings?busNo=&journeyDate=
func (h *BookingHandler) SearchBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	busNo := query.Get("busNo")
	journeyDate := query.Get("journeyDate")

	bookings, err := h.service.SearchBookings(r.Context(), busNo, journeyDate)
	if err != nil {
		h.handleServiceError(w, err, "search bookings")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, bookings)
}

// UpdateBooking handles PUT /update
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.UpdateBookingSeat(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "update booking")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.OperationResponse{Success: true})
}

// DeleteBooking handles DELETE /delete/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required")
		return
	}

	if err := h.service.DeleteBooking(r.Context(), bookingID); err != nil {
		h.handleServiceError(w, err, "delete booking")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.OperationResponse{Success: true})
}

// Stats handles GET /stats
func (h *BookingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.BookingStats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "booking stats")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, stats)
}

// handleServiceError maps service errors to responses for booking operations
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "already booked"):
		h.log.Warn(operation+" failed - seat already booked",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Seat already booked")

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "All fields required")

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server error")
	}
}
