// Package search holds the stateless parts of the flight search pipeline:
// route and date matching against the catalog, and the time-of-day filter and
// sort applied to a result set.
package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/samber/lo"
)

type TimeOfDay string

const (
	AnyTime   TimeOfDay = "all"
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
	SortByDeparture SortKey = "departure"
	SortByArrival   SortKey = "arrival"
)

const dateLayout = "2006-01-02"

// ParseDate accepts a calendar date or an RFC 3339 timestamp and returns the
// UTC calendar day it falls on.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, domain.ErrInvalidInput)
	}
	return truncateDay(t), nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether t departs on the given UTC calendar day.
func SameDay(t, day time.Time) bool {
	return truncateDay(t).Equal(truncateDay(day))
}

// AirportMatches reports whether the airport city or code contains term,
// ignoring case. A nil airport never matches. This is substring matching on
// purpose: "ist" matches Istanbul as well as any city containing "ist".
func AirportMatches(a *domain.Airport, term string) bool {
	if a == nil {
		return false
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(a.City), term) ||
		strings.Contains(strings.ToLower(a.Code), term)
}

// Matches applies the catalog rule: route terms match both airports, the
// departure day equals day and the flight is active.
func Matches(f domain.FlightWithAirports, from, to string, day time.Time) bool {
	return f.IsActive &&
		AirportMatches(f.DepartureAirportInfo, from) &&
		AirportMatches(f.ArrivalAirportInfo, to) &&
		SameDay(f.DepartureTime, day)
}

// InBucket reports whether a UTC departure hour falls in the bucket.
// Evening wraps past midnight: 18:00 to 06:00.
func InBucket(departure time.Time, bucket TimeOfDay) bool {
	hour := departure.UTC().Hour()
	switch bucket {
	case Morning:
		return hour >= 6 && hour < 12
	case Afternoon:
		return hour >= 12 && hour < 18
	case Evening:
		return hour >= 18 || hour < 6
	default:
		return true
	}
}

func FilterByTimeOfDay(flights []domain.FlightWithAirports, bucket TimeOfDay) []domain.FlightWithAirports {
	return lo.Filter(flights, func(f domain.FlightWithAirports, _ int) bool {
		return InBucket(f.DepartureTime, bucket)
	})
}

// Sort orders flights ascending by key in place. Ties keep their input order.
// Unknown keys leave the slice untouched.
func Sort(flights []domain.FlightWithAirports, key SortKey) {
	var less func(a, b domain.FlightWithAirports) bool
	switch key {
	case SortByPrice:
		less = func(a, b domain.FlightWithAirports) bool { return a.EconomyPrice < b.EconomyPrice }
	case SortByDuration:
		less = func(a, b domain.FlightWithAirports) bool { return a.Duration < b.Duration }
	case SortByDeparture:
		less = func(a, b domain.FlightWithAirports) bool { return a.DepartureTime.Before(b.DepartureTime) }
	case SortByArrival:
		less = func(a, b domain.FlightWithAirports) bool { return a.ArrivalTime.Before(b.ArrivalTime) }
	default:
		return
	}
	sort.SliceStable(flights, func(i, j int) bool { return less(flights[i], flights[j]) })
}

// Apply runs the time-of-day filter and then the sort. The input is not modified.
func Apply(flights []domain.FlightWithAirports, bucket TimeOfDay, key SortKey) []domain.FlightWithAirports {
	out := FilterByTimeOfDay(flights, bucket)
	Sort(out, key)
	return out
}
