package repository

import (
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
)

// NewSeededMemoryStore returns a store loaded with the demo catalog.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	Seed(s)
	return s
}

func Seed(s *MemoryStore) {
	for _, a := range seedAirports {
		s.AddAirport(a)
	}
	for _, d := range seedDestinations {
		s.AddDestination(d)
	}
	for _, f := range seedFlights() {
		s.AddFlight(f)
	}
}

var seedAirports = []domain.Airport{
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Timezone: "Europe/Berlin"},
	{Code: "AYT", Name: "Antalya Airport", City: "Antalya", Country: "Turkey", Timezone: "Europe/Istanbul"},
	{Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Timezone: "Europe/Istanbul"},
	{Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "Germany", Timezone: "Europe/Berlin"},
	{Code: "BJV", Name: "Bodrum Airport", City: "Bodrum", Country: "Turkey", Timezone: "Europe/Istanbul"},
	{Code: "ADB", Name: "Izmir Airport", City: "Izmir", Country: "Turkey", Timezone: "Europe/Istanbul"},
	{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "United Kingdom", Timezone: "Europe/London"},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Timezone: "Europe/Paris"},
}

var seedDestinations = []domain.Destination{
	{
		ID:            "1",
		Name:          "Antalya",
		City:          "Antalya",
		Country:       "Turkey",
		Description:   "Mediterranean paradise with ancient history",
		ImageURL:      "https://images.unsplash.com/photo-1571896349842-33c89424de2d?auto=format&fit=crop&w=800&h=600",
		StartingPrice: domain.Cents(8900),
		FlightTime:    "3h 30m",
		IsPopular:     true,
	},
	{
		ID:            "2",
		Name:          "Istanbul",
		City:          "Istanbul",
		Country:       "Turkey",
		Description:   "Where Europe meets Asia",
		ImageURL:      "https://images.unsplash.com/photo-1541432901042-2d8bd64b4a9b?auto=format&fit=crop&w=800&h=600",
		StartingPrice: domain.Cents(12500),
		FlightTime:    "3h 45m",
		IsPopular:     true,
	},
	{
		ID:            "3",
		Name:          "Bodrum",
		City:          "Bodrum",
		Country:       "Turkey",
		Description:   "Aegean gem with vibrant nightlife",
		ImageURL:      "https://images.unsplash.com/photo-1580500550469-1320e4dc9112?auto=format&fit=crop&w=800&h=600",
		StartingPrice: domain.Cents(14900),
		FlightTime:    "3h 15m",
		IsPopular:     true,
	},
	{
		ID:            "4",
		Name:          "Izmir",
		City:          "Izmir",
		Country:       "Turkey",
		Description:   "Pearl of the Aegean coast",
		ImageURL:      "https://images.unsplash.com/photo-1604357737574-b8b5b7d1e6d8?auto=format&fit=crop&w=800&h=600",
		StartingPrice: domain.Cents(13500),
		FlightTime:    "3h 25m",
		IsPopular:     true,
	},
	{
		ID:            "5",
		Name:          "London",
		City:          "London",
		Country:       "United Kingdom",
		Description:   "Museums, markets and West End shows",
		ImageURL:      "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?auto=format&fit=crop&w=800&h=600",
		StartingPrice: domain.Cents(7900),
		FlightTime:    "1h 40m",
		IsPopular:     false,
	},
}

func seedFlights() []domain.Flight {
	business := func(c int64) *domain.Money {
		m := domain.Cents(c)
		return &m
	}
	at := func(s string) time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return t
	}

	return []domain.Flight{
		{
			ID:                     "1",
			FlightNumber:           "XQ123",
			DepartureAirport:       "FRA",
			ArrivalAirport:         "AYT",
			DepartureTime:          at("2024-12-20T10:30:00Z"),
			ArrivalTime:            at("2024-12-20T14:00:00Z"),
			Duration:               210,
			Aircraft:               "Boeing 737-800",
			EconomyPrice:           domain.Cents(8900),
			BusinessPrice:          business(18900),
			EconomySeatsAvailable:  156,
			BusinessSeatsAvailable: 12,
			IsActive:               true,
		},
		{
			ID:                     "2",
			FlightNumber:           "XQ456",
			DepartureAirport:       "AYT",
			ArrivalAirport:         "FRA",
			DepartureTime:          at("2024-12-27T15:30:00Z"),
			ArrivalTime:            at("2024-12-27T17:00:00Z"),
			Duration:               210,
			Aircraft:               "Boeing 737-800",
			EconomyPrice:           domain.Cents(8900),
			BusinessPrice:          business(18900),
			EconomySeatsAvailable:  142,
			BusinessSeatsAvailable: 8,
			IsActive:               true,
		},
		{
			ID:                     "3",
			FlightNumber:           "XQ125",
			DepartureAirport:       "FRA",
			ArrivalAirport:         "AYT",
			DepartureTime:          at("2024-12-20T18:45:00Z"),
			ArrivalTime:            at("2024-12-20T22:15:00Z"),
			Duration:               210,
			Aircraft:               "Boeing 737-800",
			EconomyPrice:           domain.Cents(7900),
			BusinessPrice:          business(16900),
			EconomySeatsAvailable:  0,
			BusinessSeatsAvailable: 0,
			IsActive:               false,
		},
		{
			ID:                     "4",
			FlightNumber:           "XQ781",
			DepartureAirport:       "MUC",
			ArrivalAirport:         "IST",
			DepartureTime:          at("2024-12-20T19:40:00Z"),
			ArrivalTime:            at("2024-12-20T22:55:00Z"),
			Duration:               195,
			Aircraft:               "Boeing 737 MAX 8",
			EconomyPrice:           domain.Cents(12500),
			BusinessPrice:          business(24900),
			EconomySeatsAvailable:  98,
			BusinessSeatsAvailable: 6,
			IsActive:               true,
		},
		{
			ID:                     "5",
			FlightNumber:           "XQ783",
			DepartureAirport:       "MUC",
			ArrivalAirport:         "IST",
			DepartureTime:          at("2024-12-20T06:10:00Z"),
			ArrivalTime:            at("2024-12-20T09:35:00Z"),
			Duration:               205,
			Aircraft:               "Boeing 737-800",
			EconomyPrice:           domain.Cents(13900),
			BusinessPrice:          nil,
			EconomySeatsAvailable:  120,
			BusinessSeatsAvailable: 0,
			IsActive:               true,
		},
		{
			ID:                     "6",
			FlightNumber:           "XQ785",
			DepartureAirport:       "MUC",
			ArrivalAirport:         "IST",
			DepartureTime:          at("2024-12-20T13:20:00Z"),
			ArrivalTime:            at("2024-12-20T16:30:00Z"),
			Duration:               190,
			Aircraft:               "Airbus A321neo",
			EconomyPrice:           domain.Cents(9900),
			BusinessPrice:          business(21900),
			EconomySeatsAvailable:  64,
			BusinessSeatsAvailable: 10,
			IsActive:               true,
		},
		{
			ID:                     "7",
			FlightNumber:           "XQ311",
			DepartureAirport:       "FRA",
			ArrivalAirport:         "BJV",
			DepartureTime:          at("2024-12-21T07:05:00Z"),
			ArrivalTime:            at("2024-12-21T10:20:00Z"),
			Duration:               195,
			Aircraft:               "Boeing 737-800",
			EconomyPrice:           domain.Cents(14900),
			BusinessPrice:          business(27900),
			EconomySeatsAvailable:  131,
			BusinessSeatsAvailable: 12,
			IsActive:               true,
		},
		{
			ID:                     "8",
			FlightNumber:           "XQ517",
			DepartureAirport:       "FRA",
			ArrivalAirport:         "ADB",
			DepartureTime:          at("2024-12-20T12:50:00Z"),
			ArrivalTime:            at("2024-12-20T16:15:00Z"),
			Duration:               205,
			Aircraft:               "Boeing 737-800",
			EconomyPrice:           domain.Cents(13500),
			BusinessPrice:          business(25500),
			EconomySeatsAvailable:  77,
			BusinessSeatsAvailable: 4,
			IsActive:               true,
		},
	}
}
