package domain

import "time"

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "economy"
	SeatClassBusiness SeatClass = "business"
)

const DefaultAirline = "SunExpress"

type Flight struct {
	ID                     string    `json:"id"`
	FlightNumber           string    `json:"flightNumber"`
	Airline                string    `json:"airline"`
	DepartureAirport       string    `json:"departureAirport"`
	ArrivalAirport         string    `json:"arrivalAirport"`
	DepartureTime          time.Time `json:"departureTime"`
	ArrivalTime            time.Time `json:"arrivalTime"`
	Duration               int       `json:"duration"`
	Aircraft               string    `json:"aircraft"`
	EconomyPrice           Money     `json:"economyPrice"`
	BusinessPrice          *Money    `json:"businessPrice"`
	EconomySeatsAvailable  int       `json:"economySeatsAvailable"`
	BusinessSeatsAvailable int       `json:"businessSeatsAvailable"`
	IsActive               bool      `json:"isActive"`
}

// BasePrice returns the per-passenger fare for the cabin. A flight without a
// business fare prices business at zero.
func (f Flight) BasePrice(class SeatClass) Money {
	if class == SeatClassBusiness {
		if f.BusinessPrice == nil {
			return 0
		}
		return *f.BusinessPrice
	}
	return f.EconomyPrice
}

// FlightWithAirports is a flight joined with its airport records. Either
// airport may be nil when the code does not resolve.
type FlightWithAirports struct {
	Flight
	DepartureAirportInfo *Airport `json:"departureAirportInfo,omitempty"`
	ArrivalAirportInfo   *Airport `json:"arrivalAirportInfo,omitempty"`
}

type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.Infants
}

// TotalPrice is the cabin base fare times the number of travellers. Children
// and infants pay the full fare.
func TotalPrice(f Flight, class SeatClass, passengers int) Money {
	return f.BasePrice(class).Mul(passengers)
}
