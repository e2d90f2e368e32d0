package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/logging"
	"github.com/Domenick1991/flightbooking/internal/metrics"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.BookingWithFlight, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, reference string) (*domain.Booking, error)
}

// FlightCatalog resolves flights joined with their airports.
type FlightCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.FlightWithAirports, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            FlightCatalog
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	newReference       ReferenceGenerator
	maxAttempts        int
	now                func() time.Time
}

// CreateBookingInput carries an already validated request. A nil TotalPrice
// asks the service to price the booking from the catalog; an empty Status
// means confirmed.
type CreateBookingInput struct {
	FlightID     string
	Passengers   []domain.Passenger
	SeatClass    domain.SeatClass
	ContactEmail string
	TotalPrice   *domain.Money
	Status       domain.BookingStatus
	UserID       *string
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithReferenceGenerator(gen ReferenceGenerator) BookingServiceOption {
	return func(s *BookingService) {
		s.newReference = gen
	}
}

func WithMaxReferenceAttempts(n int) BookingServiceOption {
	return func(s *BookingService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights FlightCatalog,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		newReference: RandomReference(DefaultReferencePrefix),
		maxAttempts:  5,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking stores a new booking. The flight id is not checked against
// the catalog and seat counts are left untouched, so repeated submissions
// create separate bookings.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	total, err := s.totalPrice(ctx, input)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.BookingStatusConfirmed
	}

	booking := &domain.Booking{
		ID:               uuid.NewString(),
		UserID:           input.UserID,
		FlightID:         input.FlightID,
		PassengerDetails: input.Passengers,
		SeatClass:        input.SeatClass,
		TotalPrice:       total,
		Status:           status,
		ContactEmail:     input.ContactEmail,
		CreatedAt:        s.now().UTC(),
	}

	if err := s.store(ctx, booking); err != nil {
		return nil, err
	}

	metrics.BookingsCreated.WithLabelValues(string(booking.SeatClass)).Inc()
	logging.FromContext(ctx).
		WithField("reference", booking.BookingReference).
		WithField("flight_id", booking.FlightID).
		WithField("passengers", len(booking.PassengerDetails)).
		Info("booking created")

	s.publish(ctx, kafka.EventBookingCreated, booking)
	return booking, nil
}

// store retries with a fresh reference while the repository reports a clash.
func (s *BookingService) store(ctx context.Context, booking *domain.Booking) error {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		ref, err := s.newReference()
		if err != nil {
			return err
		}
		booking.BookingReference = ref

		err = s.bookings.Create(ctx, booking)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("create booking: %w", err)
		}
		logging.FromContext(ctx).WithField("reference", ref).Debug("booking reference taken, retrying")
	}
	return fmt.Errorf("no free booking reference after %d attempts: %w", s.maxAttempts, domain.ErrConflict)
}

func (s *BookingService) totalPrice(ctx context.Context, input CreateBookingInput) (domain.Money, error) {
	if input.TotalPrice != nil {
		return *input.TotalPrice, nil
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("price booking: %w", err)
	}
	return domain.TotalPrice(flight.Flight, input.SeatClass, len(input.Passengers)), nil
}

// GetByReference joins the booking with its flight. A flight id that no
// longer resolves yields the booking alone.
func (s *BookingService) GetByReference(ctx context.Context, reference string) (*domain.BookingWithFlight, error) {
	booking, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	view := &domain.BookingWithFlight{Booking: *booking}
	flight, err := s.flights.GetByID(ctx, booking.FlightID)
	switch {
	case err == nil:
		view.Flight = flight
	case errors.Is(err, domain.ErrNotFound):
		logging.FromContext(ctx).WithField("flight_id", booking.FlightID).Warn("booked flight no longer in catalog")
	default:
		return nil, fmt.Errorf("load booked flight: %w", err)
	}
	return view, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user id is required: %w", domain.ErrInvalidInput)
	}
	return s.bookings.ListByUser(ctx, userID)
}

// CancelBooking is idempotent: cancelling a cancelled booking returns it as is.
func (s *BookingService) CancelBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	current, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, reference, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, kafka.EventBookingCancelled, updated)
	return updated, nil
}

// publish never fails the caller; a lost event is logged and counted.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:             eventType,
		BookingReference: booking.BookingReference,
		FlightID:         booking.FlightID,
		SeatClass:        string(booking.SeatClass),
		Passengers:       len(booking.PassengerDetails),
		TotalPrice:       booking.TotalPrice.String(),
		Email:            booking.ContactEmail,
		Status:           string(booking.Status),
		OccurredAt:       s.now().UTC(),
	}

	topics := []string{s.bookingTopic}
	if s.notificationsTopic != "" {
		topics = append(topics, s.notificationsTopic)
	}
	for _, topic := range topics {
		if err := s.producer.Publish(ctx, topic, booking.BookingReference, event); err != nil {
			metrics.EventsPublishFailed.WithLabelValues(eventType).Inc()
			logging.FromContext(ctx).
				WithError(err).
				WithField("topic", topic).
				WithField("reference", booking.BookingReference).
				Warn("failed to publish booking event")
		}
	}
}

func validateInput(input CreateBookingInput) error {
	if strings.TrimSpace(input.FlightID) == "" {
		return fmt.Errorf("flight id is required: %w", domain.ErrInvalidInput)
	}
	if len(input.Passengers) == 0 {
		return fmt.Errorf("at least one passenger is required: %w", domain.ErrInvalidInput)
	}
	if !strings.Contains(input.ContactEmail, "@") {
		return fmt.Errorf("contact email is invalid: %w", domain.ErrInvalidInput)
	}
	switch input.SeatClass {
	case domain.SeatClassEconomy, domain.SeatClassBusiness:
	default:
		return fmt.Errorf("seat class %q: %w", input.SeatClass, domain.ErrInvalidInput)
	}
	switch input.Status {
	case "", domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCancelled:
	default:
		return fmt.Errorf("status %q: %w", input.Status, domain.ErrInvalidInput)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
