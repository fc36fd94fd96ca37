package usecase

import (
	"bus-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Bus     BusService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, log),
		Bus:     NewBusService(repo.Bus, log),
	}
}
