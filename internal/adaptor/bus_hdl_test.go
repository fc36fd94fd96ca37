package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bus-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubBusService struct {
	buses []response.BusResponse
}

func (s *stubBusService) ListBuses(_ context.Context) []response.BusResponse {
	return s.buses
}

func TestListBusesEmptyArray(t *testing.T) {
	h := NewBusHandler(&stubBusService{buses: []response.BusResponse{}}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/buses", nil)
	rec := httptest.NewRecorder()
	h.ListBuses(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListBuses(t *testing.T) {
	h := NewBusHandler(&stubBusService{buses: []response.BusResponse{
		{ID: "b-1", BusNo: "B1", BusType: "AC", Source: "Pune", Destination: "Mumbai"},
	}}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/buses", nil)
	rec := httptest.NewRecorder()
	h.ListBuses(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"busNo":"B1"`)
}
