package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PassengerType string

const (
	PassengerAdult  PassengerType = "adult"
	PassengerChild  PassengerType = "child"
	PassengerInfant PassengerType = "infant"
)

type Passenger struct {
	Title          string        `json:"title"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	DateOfBirth    string        `json:"dateOfBirth"`
	Nationality    string        `json:"nationality"`
	PassportNumber string        `json:"passportNumber,omitempty"`
	Type           PassengerType `json:"type"`
}

type Booking struct {
	ID               string        `json:"id"`
	BookingReference string        `json:"bookingReference"`
	UserID           *string       `json:"userId"`
	FlightID         string        `json:"flightId"`
	PassengerDetails []Passenger   `json:"passengerDetails"`
	SeatClass        SeatClass     `json:"seatClass"`
	TotalPrice       Money         `json:"totalPrice"`
	Status           BookingStatus `json:"status"`
	ContactEmail     string        `json:"contactEmail"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// BookingWithFlight is the confirmation view. Flight is nil when the booked
// flight id no longer resolves.
type BookingWithFlight struct {
	Booking
	Flight *FlightWithAirports `json:"flight,omitempty"`
}
