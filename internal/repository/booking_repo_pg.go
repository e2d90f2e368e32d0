package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const bookingColumns = `id, booking_reference, user_id, flight_id, passenger_details, seat_class, total_price_cents, status, contact_email, created_at`

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGBookingRepository persists bookings in Postgres. The catalog stays in
// memory; only bookings outlive a restart.
type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) *PGBookingRepository {
	return &PGBookingRepository{db: db}
}

// Migrate creates the bookings table when it does not exist yet.
func (r *PGBookingRepository) Migrate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS bookings (
			id                TEXT PRIMARY KEY,
			booking_reference VARCHAR(16) NOT NULL UNIQUE,
			user_id           TEXT,
			flight_id         TEXT NOT NULL,
			passenger_details JSONB NOT NULL,
			seat_class        VARCHAR(16) NOT NULL,
			total_price_cents BIGINT NOT NULL,
			status            VARCHAR(16) NOT NULL DEFAULT 'confirmed',
			contact_email     TEXT NOT NULL,
			created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}
	return nil
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	passengers, err := json.Marshal(booking.PassengerDetails)
	if err != nil {
		return fmt.Errorf("encode passengers: %w", err)
	}

	err = r.db.QueryRow(ctx, `INSERT INTO bookings (id, booking_reference, user_id, flight_id, passenger_details, seat_class, total_price_cents, status, contact_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`,
		booking.ID, booking.BookingReference, booking.UserID, booking.FlightID, passengers,
		booking.SeatClass, int64(booking.TotalPrice), booking.Status, booking.ContactEmail, booking.CreatedAt).
		Scan(&booking.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("booking reference %s: %w", booking.BookingReference, domain.ErrConflict)
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *PGBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_reference=$1`, reference)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("booking %s: %w", reference, domain.ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, reference string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1 WHERE booking_reference=$2 RETURNING `+bookingColumns, status, reference)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("booking %s: %w", reference, domain.ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		b          domain.Booking
		passengers []byte
		cents      int64
	)
	if err := row.Scan(&b.ID, &b.BookingReference, &b.UserID, &b.FlightID, &passengers, &b.SeatClass, &cents, &b.Status, &b.ContactEmail, &b.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(passengers, &b.PassengerDetails); err != nil {
		return nil, fmt.Errorf("decode passengers of %s: %w", b.BookingReference, err)
	}
	b.TotalPrice = domain.Cents(cents)
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
