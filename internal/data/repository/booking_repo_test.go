package repository

import (
	"context"
	"testing"
	"time"

	"bus-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bookingColumns = []string{
	"id", "bus_no", "bus_type", "fare", "seat",
	"passenger_name", "mobile", "journey_date", "booking_time",
}

func newBookingRepo(t *testing.T) (BookingRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewBookingRepository(mock, zap.NewNop()), mock
}

func sampleBooking() *entity.Booking {
	return &entity.Booking{
		ID:            uuid.New(),
		BusNo:         "B1",
		BusType:       "AC",
		Fare:          500,
		Seat:          12,
		PassengerName: "Asha",
		Mobile:        "9999999999",
		JourneyDate:   "2024-05-01",
		BookingTime:   time.Date(2024, 4, 20, 10, 30, 0, 0, time.UTC),
	}
}

func TestBookingRepositoryCreate(t *testing.T) {
	repo, mock := newBookingRepo(t)
	booking := sampleBooking()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(
			booking.ID, booking.BusNo, booking.BusType, booking.Fare, booking.Seat,
			booking.PassengerName, booking.Mobile, booking.JourneyDate, booking.BookingTime,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), booking)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryCreateUniqueViolation(t *testing.T) {
	repo, mock := newBookingRepo(t)
	booking := sampleBooking()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(
			booking.ID, booking.BusNo, booking.BusType, booking.Fare, booking.Seat,
			booking.PassengerName, booking.Mobile, booking.JourneyDate, booking.BookingTime,
		).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_bus_seat_date"})

	err := repo.Create(context.Background(), booking)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already booked")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryFindBySeat(t *testing.T) {
	repo, mock := newBookingRepo(t)
	booking := sampleBooking()

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(booking.BusNo, booking.Seat, booking.JourneyDate).
		WillReturnRows(pgxmock.NewRows(bookingColumns).AddRow(
			booking.ID, booking.BusNo, booking.BusType, booking.Fare, booking.Seat,
			booking.PassengerName, booking.Mobile, booking.JourneyDate, booking.BookingTime,
		))

	found, err := repo.FindBySeat(context.Background(), booking.BusNo, booking.Seat, booking.JourneyDate)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, booking.ID, found.ID)
	assert.Equal(t, booking.PassengerName, found.PassengerName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryFindBySeatNoMatch(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("B9", 1, "2024-05-01").
		WillReturnError(pgx.ErrNoRows)

	found, err := repo.FindBySeat(context.Background(), "B9", 1, "2024-05-01")
	require.NoError(t, err)
	assert.Nil(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositorySearchBuildsFilter(t *testing.T) {
	repo, mock := newBookingRepo(t)
	booking := sampleBooking()

	// Both filters present: two placeholders, conjunctive.
	mock.ExpectQuery(`SELECT (.+) FROM bookings\s+WHERE bus_no = \$1 AND journey_date = \$2`).
		WithArgs("B1", "2024-05-01").
		WillReturnRows(pgxmock.NewRows(bookingColumns).AddRow(
			booking.ID, booking.BusNo, booking.BusType, booking.Fare, booking.Seat,
			booking.PassengerName, booking.Mobile, booking.JourneyDate, booking.BookingTime,
		))

	bookings, err := repo.Search(context.Background(), "B1", "2024-05-01")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "B1", bookings[0].BusNo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositorySearchDateOnly(t *testing.T) {
	repo, mock := newBookingRepo(t)

	// Absent busNo imposes no constraint; the date takes placeholder $1.
	mock.ExpectQuery(`SELECT (.+) FROM bookings\s+WHERE journey_date = \$1`).
		WithArgs("2024-05-01").
		WillReturnRows(pgxmock.NewRows(bookingColumns))

	bookings, err := repo.Search(context.Background(), "", "2024-05-01")
	require.NoError(t, err)
	assert.Empty(t, bookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryFindAllNoFilter(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings\s+ORDER BY booking_time`).
		WillReturnRows(pgxmock.NewRows(bookingColumns))

	bookings, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryUpdateSeatNoMatchIsNoOp(t *testing.T) {
	repo, mock := newBookingRepo(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE bookings SET seat").
		WithArgs(id, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateSeat(context.Background(), id, 5)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryDeleteNoMatchIsNoOp(t *testing.T) {
	repo, mock := newBookingRepo(t)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryCountByBus(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectQuery("SELECT bus_no, COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"bus_no", "total_booked_seats"}).
			AddRow("A", int64(3)).
			AddRow("B", int64(1)))

	counts, err := repo.CountByBus(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byBus := make(map[string]int64)
	for _, c := range counts {
		byBus[c.BusNo] = c.TotalBookedSeats
	}
	assert.Equal(t, int64(3), byBus["A"])
	assert.Equal(t, int64(1), byBus["B"])
	require.NoError(t, mock.ExpectationsWereMet())
}
