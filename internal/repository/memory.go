package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Domenick1991/flightbooking/internal/domain"
)

// MemoryStore keeps the catalog and bookings in process memory. It is built
// once at startup and handed to the services; tests build their own.
type MemoryStore struct {
	mu           sync.RWMutex
	airports     map[string]domain.Airport
	flights      map[string]domain.Flight
	destinations map[string]domain.Destination
	bookings     map[string]domain.Booking // keyed by reference
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		airports:     make(map[string]domain.Airport),
		flights:      make(map[string]domain.Flight),
		destinations: make(map[string]domain.Destination),
		bookings:     make(map[string]domain.Booking),
	}
}

func (s *MemoryStore) AddAirport(a domain.Airport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.airports[a.Code] = a
}

func (s *MemoryStore) AddFlight(f domain.Flight) {
	if f.Airline == "" {
		f.Airline = domain.DefaultAirline
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights[f.ID] = f
}

func (s *MemoryStore) AddDestination(d domain.Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinations[d.ID] = d
}

func (s *MemoryStore) ListAirports(_ context.Context) ([]domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	airports := make([]domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		airports = append(airports, a)
	}
	sort.Slice(airports, func(i, j int) bool { return airports[i].Code < airports[j].Code })
	return airports, nil
}

func (s *MemoryStore) GetAirport(_ context.Context, code string) (*domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.airports[code]
	if !ok {
		return nil, fmt.Errorf("airport %s: %w", code, domain.ErrNotFound)
	}
	return &a, nil
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flights := make([]domain.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		flights = append(flights, f)
	}
	sort.Slice(flights, func(i, j int) bool { return flights[i].DepartureTime.Before(flights[j].DepartureTime) })
	return flights, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.flights[id]
	if !ok {
		return nil, fmt.Errorf("flight %s: %w", id, domain.ErrNotFound)
	}
	return &f, nil
}

func (s *MemoryStore) ListDestinations(_ context.Context) ([]domain.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	destinations := make([]domain.Destination, 0, len(s.destinations))
	for _, d := range s.destinations {
		destinations = append(destinations, d)
	}
	sort.Slice(destinations, func(i, j int) bool { return destinations[i].ID < destinations[j].ID })
	return destinations, nil
}

func (s *MemoryStore) GetDestination(_ context.Context, id string) (*domain.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.destinations[id]
	if !ok {
		return nil, fmt.Errorf("destination %s: %w", id, domain.ErrNotFound)
	}
	return &d, nil
}

func (s *MemoryStore) Create(_ context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.bookings[booking.BookingReference]; taken {
		return fmt.Errorf("booking reference %s: %w", booking.BookingReference, domain.ErrConflict)
	}
	s.bookings[booking.BookingReference] = cloneBooking(*booking)
	return nil
}

func (s *MemoryStore) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[reference]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", reference, domain.ErrNotFound)
	}
	b = cloneBooking(b)
	return &b, nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID != nil && *b.UserID == userID {
			bookings = append(bookings, cloneBooking(b))
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].CreatedAt.Before(bookings[j].CreatedAt) })
	return bookings, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, reference string, status domain.BookingStatus) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[reference]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", reference, domain.ErrNotFound)
	}
	b.Status = status
	s.bookings[reference] = b
	b = cloneBooking(b)
	return &b, nil
}

// cloneBooking copies the passenger slice so callers cannot mutate stored state.
func cloneBooking(b domain.Booking) domain.Booking {
	b.PassengerDetails = append([]domain.Passenger(nil), b.PassengerDetails...)
	if b.UserID != nil {
		id := *b.UserID
		b.UserID = &id
	}
	return b
}

var (
	_ AirportRepository     = (*MemoryStore)(nil)
	_ FlightRepository      = (*MemoryStore)(nil)
	_ DestinationRepository = (*MemoryStore)(nil)
	_ BookingRepository     = (*MemoryStore)(nil)
)
