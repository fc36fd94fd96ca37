package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
	SearchBookings(ctx context.Context, busNo, journeyDate string) ([]response.BookingResponse, error)
	UpdateBookingSeat(ctx context.Context, req *request.UpdateBookingRequest) error
	DeleteBooking(ctx context.Context, bookingID string) error

	// Aggregation
	BookingStats(ctx context.Context) ([]response.BookingStatsResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// One seat per bus per journey date. This pre-check gives the friendly
	// rejection path; the unique index in the store closes the race between
	// two concurrent creates that both pass the check.
	existing, err := s.repo.Booking.FindBySeat(ctx, req.BusNo, req.Seat, req.JourneyDate)
	if err != nil {
		s.log.Error("Failed to check seat availability", zap.Error(err))
		return nil, fmt.Errorf("check seat availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("seat %d on bus %s for %s is already booked",
			req.Seat, req.BusNo, req.JourneyDate)
	}

	booking := &entity.Booking{
		ID:            uuid.New(),
		BusNo:         req.BusNo,
		BusType:       req.BusType,
		Fare:          req.Fare,
		Seat:          req.Seat,
		PassengerName: req.PassengerName,
		Mobile:        req.Mobile,
		JourneyDate:   req.JourneyDate,
		BookingTime:   time.Now(), // server clock, never client-supplied
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("bus_no", booking.BusNo),
		zap.Int("seat", booking.Seat),
		zap.String("journey_date", booking.JourneyDate),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) SearchBookings(ctx context.Context, busNo, journeyDate string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.Search(ctx, busNo, journeyDate)
	if err != nil {
		s.log.Error("Failed to search bookings",
			zap.Error(err),
			zap.String("bus_no", busNo),
			zap.String("journey_date", journeyDate),
		)
		return nil, fmt.Errorf("search bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) UpdateBookingSeat(ctx context.Context, req *request.UpdateBookingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.ID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", req.ID, err)
	}

	// NOTE: the seat is reassigned without re-checking the one-seat-per-bus
	// rule, matching the existing frontend's expectations. Tightening this
	// needs a product decision first.
	if err := s.repo.Booking.UpdateSeat(ctx, bookingID, req.Seat); err != nil {
		return fmt.Errorf("update booking seat: %w", err)
	}

	s.log.Info("Booking seat updated",
		zap.String("booking_id", req.ID),
		zap.Int("seat", req.Seat),
	)

	return nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	// Deleting an unknown id is a no-op, not an error.
	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	return nil
}

func (s *bookingService) BookingStats(ctx context.Context) ([]response.BookingStatsResponse, error) {
	counts, err := s.repo.Booking.CountByBus(ctx)
	if err != nil {
		s.log.Error("Failed to get booking stats", zap.Error(err))
		return nil, fmt.Errorf("booking stats: %w", err)
	}

	return response.BookingStatsToResponse(counts), nil
}
