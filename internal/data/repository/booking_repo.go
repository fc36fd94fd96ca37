package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Postgres error code for unique_violation
const uniqueViolationCode = "23505"

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindBySeat(ctx context.Context, busNo string, seat int, journeyDate string) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	Search(ctx context.Context, busNo, journeyDate string) ([]*entity.Booking, error)
	UpdateSeat(ctx context.Context, id uuid.UUID, seat int) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Aggregation
	CountByBus(ctx context.Context) ([]*entity.BusBookingCount, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, bus_no, bus_type, fare, seat, passenger_name, mobile, journey_date, booking_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BusNo,
		booking.BusType,
		booking.Fare,
		booking.Seat,
		booking.PassengerName,
		booking.Mobile,
		booking.JourneyDate,
		booking.BookingTime,
	)

	if err != nil {
		// The unique index on (bus_no, seat, journey_date) is the canonical
		// conflict signal; the service-level pre-check can lose a race.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			r.log.Warn("Duplicate seat booking rejected by unique index",
				zap.String("bus_no", booking.BusNo),
				zap.Int("seat", booking.Seat),
				zap.String("journey_date", booking.JourneyDate),
			)
			return fmt.Errorf("seat %d on bus %s for %s is already booked",
				booking.Seat, booking.BusNo, booking.JourneyDate)
		}

		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("bus_no", booking.BusNo),
			zap.Int("seat", booking.Seat),
		)
		return fmt.Errorf("create booking for bus %s seat %d: %w", booking.BusNo, booking.Seat, err)
	}

	return nil
}

func (r *bookingRepository) FindBySeat(ctx context.Context, busNo string, seat int, journeyDate string) (*entity.Booking, error) {
	query := `
		SELECT id, bus_no, bus_type, fare, seat, passenger_name, mobile, journey_date, booking_time
		FROM bookings
		WHERE bus_no = $1 AND seat = $2 AND journey_date = $3
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, busNo, seat, journeyDate).Scan(
		&booking.ID,
		&booking.BusNo,
		&booking.BusType,
		&booking.Fare,
		&booking.Seat,
		&booking.PassengerName,
		&booking.Mobile,
		&booking.JourneyDate,
		&booking.BookingTime,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by seat",
			zap.Error(err),
			zap.String("bus_no", busNo),
			zap.Int("seat", seat),
			zap.String("journey_date", journeyDate),
		)
		return nil, fmt.Errorf("find booking by seat %d on bus %s: %w", seat, busNo, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return r.Search(ctx, "", "")
}

func (r *bookingRepository) Search(ctx context.Context, busNo, journeyDate string) ([]*entity.Booking, error) {
	query := `
		SELECT id, bus_no, bus_type, fare, seat, passenger_name, mobile, journey_date, booking_time
		FROM bookings
	`

	// Equality filter only from the fields actually provided; empty values
	// impose no constraint.
	var conditions []string
	var args []any
	if busNo != "" {
		args = append(args, busNo)
		conditions = append(conditions, fmt.Sprintf("bus_no = $%d", len(args)))
	}
	if journeyDate != "" {
		args = append(args, journeyDate)
		conditions = append(conditions, fmt.Sprintf("journey_date = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY booking_time"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search bookings",
			zap.Error(err),
			zap.String("bus_no", busNo),
			zap.String("journey_date", journeyDate),
		)
		return nil, fmt.Errorf("search bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.BusNo,
			&booking.BusType,
			&booking.Fare,
			&booking.Seat,
			&booking.PassengerName,
			&booking.Mobile,
			&booking.JourneyDate,
			&booking.BookingTime,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateSeat(ctx context.Context, id uuid.UUID, seat int) error {
	query := `UPDATE bookings SET seat = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, seat)
	if err != nil {
		r.log.Error("Failed to update booking seat",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.Int("seat", seat),
		)
		return fmt.Errorf("update booking %s seat to %d: %w", id.String(), seat, err)
	}

	// Zero rows matched is not an error: the update is a no-op then,
	// same as the underlying store's update semantics.
	if result.RowsAffected() == 0 {
		r.log.Warn("Update matched no booking", zap.String("booking_id", id.String()))
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		r.log.Warn("Delete matched no booking", zap.String("booking_id", id.String()))
		return nil
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) CountByBus(ctx context.Context) ([]*entity.BusBookingCount, error) {
	query := `
		SELECT bus_no, COUNT(*) AS total_booked_seats
		FROM bookings
		GROUP BY bus_no
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count bookings by bus", zap.Error(err))
		return nil, fmt.Errorf("count bookings by bus: %w", err)
	}
	defer rows.Close()

	var counts []*entity.BusBookingCount
	for rows.Next() {
		var count entity.BusBookingCount
		if err := rows.Scan(&count.BusNo, &count.TotalBookedSeats); err != nil {
			r.log.Error("Failed to scan booking count row", zap.Error(err))
			return nil, fmt.Errorf("scan booking count row: %w", err)
		}
		counts = append(counts, &count)
	}

	return counts, nil
}
