package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ DB = (*pgxpool.Pool)(nil)

var bookingColumnNames = []string{
	"id", "booking_reference", "user_id", "flight_id", "passenger_details",
	"seat_class", "total_price_cents", "status", "contact_email", "created_at",
}

func newMockRepo(t *testing.T) (*PGBookingRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewBookingRepository(mock), mock
}

func pgBooking() *domain.Booking {
	user := "user-1"
	return &domain.Booking{
		ID:               "b6a1d0f2-0000-4000-8000-000000000001",
		BookingReference: "SXAB12CD",
		UserID:           &user,
		FlightID:         "1",
		PassengerDetails: []domain.Passenger{
			{Title: "Mrs", FirstName: "Erika", LastName: "Mustermann", DateOfBirth: "1985-03-14", Nationality: "DE", Type: domain.PassengerAdult},
			{Title: "Mr", FirstName: "Tim", LastName: "Mustermann", DateOfBirth: "2019-07-01", Nationality: "DE", PassportNumber: "C01X00T47", Type: domain.PassengerChild},
		},
		SeatClass:    domain.SeatClassEconomy,
		TotalPrice:   17800,
		Status:       domain.BookingStatusConfirmed,
		ContactEmail: "erika@example.com",
		CreatedAt:    time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

func bookingRow(t *testing.T, rows *pgxmock.Rows, b *domain.Booking) *pgxmock.Rows {
	t.Helper()
	passengers, err := json.Marshal(b.PassengerDetails)
	require.NoError(t, err)
	return rows.AddRow(b.ID, b.BookingReference, b.UserID, b.FlightID, passengers,
		b.SeatClass, int64(b.TotalPrice), b.Status, b.ContactEmail, b.CreatedAt)
}

func TestPGBookingRepository_Migrate(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS bookings")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, repo.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGBookingRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := pgBooking()
	stored := time.Date(2024, 12, 1, 9, 0, 1, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(b.ID, "SXAB12CD", pgxmock.AnyArg(), "1", pgxmock.AnyArg(),
			domain.SeatClassEconomy, int64(17800), domain.BookingStatusConfirmed, "erika@example.com", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(stored))

	require.NoError(t, repo.Create(context.Background(), b))
	assert.Equal(t, stored, b.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGBookingRepository_Create_DuplicateReference(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), pgBooking())

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGBookingRepository_Create_OtherError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pgconn.PgError{Code: "23502", Message: "null value in column"})

	err := repo.Create(context.Background(), pgBooking())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

func TestPGBookingRepository_GetByReference(t *testing.T) {
	repo, mock := newMockRepo(t)
	want := pgBooking()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE booking_reference=$1")).
		WithArgs("SXAB12CD").
		WillReturnRows(bookingRow(t, pgxmock.NewRows(bookingColumnNames), want))

	got, err := repo.GetByReference(context.Background(), "SXAB12CD")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "C01X00T47", got.PassengerDetails[1].PassportNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGBookingRepository_GetByReference_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE booking_reference=$1")).
		WithArgs("SXNOPE00").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByReference(context.Background(), "SXNOPE00")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPGBookingRepository_GetByReference_CorruptPassengers(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := pgBooking()
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE booking_reference=$1")).
		WillReturnRows(pgxmock.NewRows(bookingColumnNames).AddRow(b.ID, b.BookingReference, b.UserID, b.FlightID,
			[]byte("not json"), b.SeatClass, int64(b.TotalPrice), b.Status, b.ContactEmail, b.CreatedAt))

	_, err := repo.GetByReference(context.Background(), "SXAB12CD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode passengers")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestPGBookingRepository_ListByUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	first := pgBooking()
	second := pgBooking()
	second.ID = "b6a1d0f2-0000-4000-8000-000000000002"
	second.BookingReference = "SXZZ99YY"
	second.SeatClass = domain.SeatClassBusiness

	rows := pgxmock.NewRows(bookingColumnNames)
	bookingRow(t, rows, first)
	bookingRow(t, rows, second)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE user_id=$1")).
		WithArgs("user-1").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "SXAB12CD", got[0].BookingReference)
	assert.Equal(t, domain.SeatClassBusiness, got[1].SeatClass)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGBookingRepository_ListByUser_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE user_id=$1")).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.ListByUser(context.Background(), "user-1")

	assert.ErrorContains(t, err, "connection refused")
}

func TestPGBookingRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	cancelled := pgBooking()
	cancelled.Status = domain.BookingStatusCancelled

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET status=$1 WHERE booking_reference=$2 RETURNING")).
		WithArgs(domain.BookingStatusCancelled, "SXAB12CD").
		WillReturnRows(bookingRow(t, pgxmock.NewRows(bookingColumnNames), cancelled))

	got, err := repo.UpdateStatus(context.Background(), "SXAB12CD", domain.BookingStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	assert.Len(t, got.PassengerDetails, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGBookingRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET status=$1")).
		WithArgs(domain.BookingStatusCancelled, "SXNOPE00").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateStatus(context.Background(), "SXNOPE00", domain.BookingStatusCancelled)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
