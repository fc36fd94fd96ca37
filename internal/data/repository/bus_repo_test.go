package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBusRepositoryFindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := NewBusRepository(mock, zap.NewNop())

	busID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM buses").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "bus_no", "bus_type", "source", "destination", "departure_time", "fare", "total_seats",
		}).AddRow(busID, "B1", "AC", "Pune", "Mumbai", "08:30", 500.0, 40))

	buses, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, buses, 1)
	assert.Equal(t, busID, buses[0].ID)
	assert.Equal(t, "B1", buses[0].BusNo)
	assert.Equal(t, 40, buses[0].TotalSeats)
	require.NoError(t, mock.ExpectationsWereMet())
}
