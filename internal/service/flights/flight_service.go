package flights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/logging"
	"github.com/Domenick1991/flightbooking/internal/metrics"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/Domenick1991/flightbooking/internal/search"
	"github.com/samber/lo"
)

type FlightUseCase interface {
	Search(ctx context.Context, q SearchQuery) ([]domain.FlightWithAirports, error)
	GetByID(ctx context.Context, id string) (*domain.FlightWithAirports, error)
	Quote(ctx context.Context, id string, class domain.SeatClass, passengers domain.PassengerCounts) (*Quote, error)
	Airports(ctx context.Context, q string) ([]domain.Airport, error)
	Destinations(ctx context.Context, popularOnly bool) ([]domain.Destination, error)
	Destination(ctx context.Context, id string) (*domain.Destination, error)
}

// SearchCache stores catalog matches per route and day. GetSearch returns
// nil, nil on a miss.
type SearchCache interface {
	GetSearch(ctx context.Context, from, to string, day time.Time) ([]domain.FlightWithAirports, error)
	SetSearch(ctx context.Context, from, to string, day time.Time, flights []domain.FlightWithAirports) error
}

type SearchQuery struct {
	From          string
	To            string
	DepartureDate string
	ReturnDate    string
	Passengers    domain.PassengerCounts
	SeatClass     domain.SeatClass
	TripType      string
	TimeOfDay     search.TimeOfDay
	SortBy        search.SortKey
}

type Quote struct {
	FlightID   string                 `json:"flightId"`
	SeatClass  domain.SeatClass       `json:"seatClass"`
	Passengers domain.PassengerCounts `json:"passengers"`
	BasePrice  domain.Money           `json:"basePrice"`
	TotalPrice domain.Money           `json:"totalPrice"`
}

type FlightService struct {
	flights      repository.FlightRepository
	airports     repository.AirportRepository
	destinations repository.DestinationRepository
	cache        SearchCache
}

type FlightServiceOption func(*FlightService)

func WithSearchCache(cache SearchCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func NewFlightService(
	flights repository.FlightRepository,
	airports repository.AirportRepository,
	destinations repository.DestinationRepository,
	opts ...FlightServiceOption,
) *FlightService {
	s := &FlightService{flights: flights, airports: airports, destinations: destinations}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search matches the catalog on route and departure day, then applies the
// time-of-day filter and sort. Return legs are not searched.
func (s *FlightService) Search(ctx context.Context, q SearchQuery) ([]domain.FlightWithAirports, error) {
	day, err := search.ParseDate(q.DepartureDate)
	if err != nil {
		return nil, err
	}

	// Trimmed once so the catalog match and the cache key see the same terms.
	matched, err := s.match(ctx, strings.TrimSpace(q.From), strings.TrimSpace(q.To), day)
	if err != nil {
		return nil, err
	}
	return search.Apply(matched, q.TimeOfDay, q.SortBy), nil
}

func (s *FlightService) match(ctx context.Context, from, to string, day time.Time) ([]domain.FlightWithAirports, error) {
	log := logging.FromContext(ctx)

	if s.cache != nil {
		cached, err := s.cache.GetSearch(ctx, from, to, day)
		if err != nil {
			log.WithError(err).Warn("search cache read failed")
		} else if cached != nil {
			metrics.FlightSearches.WithLabelValues("hit").Inc()
			return cached, nil
		}
	}
	metrics.FlightSearches.WithLabelValues("miss").Inc()

	all, err := s.flights.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}

	matched := make([]domain.FlightWithAirports, 0)
	for _, f := range all {
		enriched := s.enrich(ctx, f)
		if search.Matches(enriched, from, to, day) {
			matched = append(matched, enriched)
		}
	}

	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, from, to, day, matched); err != nil {
			log.WithError(err).Warn("search cache write failed")
		}
	}
	return matched, nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.FlightWithAirports, error) {
	f, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enriched := s.enrich(ctx, *f)
	return &enriched, nil
}

func (s *FlightService) Quote(ctx context.Context, id string, class domain.SeatClass, passengers domain.PassengerCounts) (*Quote, error) {
	f, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Quote{
		FlightID:   f.ID,
		SeatClass:  class,
		Passengers: passengers,
		BasePrice:  f.BasePrice(class),
		TotalPrice: domain.TotalPrice(*f, class, passengers.Total()),
	}, nil
}

// Airports filters on name, city, code or country. An empty query returns all.
func (s *FlightService) Airports(ctx context.Context, q string) ([]domain.Airport, error) {
	all, err := s.airports.ListAirports(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(q))
	if term == "" {
		return all, nil
	}
	return lo.Filter(all, func(a domain.Airport, _ int) bool {
		return strings.Contains(strings.ToLower(a.Name), term) ||
			strings.Contains(strings.ToLower(a.City), term) ||
			strings.Contains(strings.ToLower(a.Code), term) ||
			strings.Contains(strings.ToLower(a.Country), term)
	}), nil
}

func (s *FlightService) Destinations(ctx context.Context, popularOnly bool) ([]domain.Destination, error) {
	all, err := s.destinations.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}
	if !popularOnly {
		return all, nil
	}
	return lo.Filter(all, func(d domain.Destination, _ int) bool { return d.IsPopular }), nil
}

func (s *FlightService) Destination(ctx context.Context, id string) (*domain.Destination, error) {
	return s.destinations.GetDestination(ctx, id)
}

// enrich joins both airports. Unknown codes leave the info nil.
func (s *FlightService) enrich(ctx context.Context, f domain.Flight) domain.FlightWithAirports {
	out := domain.FlightWithAirports{Flight: f}
	if a, err := s.airports.GetAirport(ctx, f.DepartureAirport); err == nil {
		out.DepartureAirportInfo = a
	}
	if a, err := s.airports.GetAirport(ctx, f.ArrivalAirport); err == nil {
		out.ArrivalAirportInfo = a
	}
	return out
}

var _ FlightUseCase = (*FlightService)(nil)
