package usecase

import (
	"context"

	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/response"

	"go.uber.org/zap"
)

type BusService interface {
	ListBuses(ctx context.Context) []response.BusResponse
}

type busService struct {
	repo repository.BusRepository
	log  *zap.Logger
}

func NewBusService(repo repository.BusRepository, log *zap.Logger) BusService {
	return &busService{
		repo: repo,
		log:  log.With(zap.String("service", "bus")),
	}
}

// ListBuses returns the bus master list. Failures degrade to an empty list
// instead of an error: the frontend treats /buses as best-effort and an
// empty result is preferable to a broken page.
func (s *busService) ListBuses(ctx context.Context) []response.BusResponse {
	buses, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Warn("Failed to list buses, serving empty list", zap.Error(err))
		return []response.BusResponse{}
	}

	return response.BusesToResponse(buses)
}
