package adaptor

import (
	"net/http"

	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type BusHandler struct {
	service usecase.BusService
	log     *zap.Logger
}

func NewBusHandler(service usecase.BusService, log *zap.Logger) *BusHandler {
	return &BusHandler{
		service: service,
		log:     log.With(zap.String("handler", "bus")),
	}
}

// ListBuses handles GET /buses. Always 200; store trouble yields [].
func (h *BusHandler) ListBuses(w http.ResponseWriter, r *http.Request) {
	buses := h.service.ListBuses(r.Context())
	utils.ResponseJSON(w, http.StatusOK, buses)
}
