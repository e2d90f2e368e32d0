package api

import (
	"net/http"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type passengerRequest struct {
	Title          string `json:"title" binding:"required,oneof=Mr Mrs Ms Dr"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	DateOfBirth    string `json:"dateOfBirth" binding:"required"`
	Nationality    string `json:"nationality" binding:"required"`
	PassportNumber string `json:"passportNumber"`
	Type           string `json:"type" binding:"required,oneof=adult child infant"`
}

type createBookingRequest struct {
	FlightID         string             `json:"flightId" binding:"required"`
	PassengerDetails []passengerRequest `json:"passengerDetails" binding:"required,min=1,dive"`
	SeatClass        string             `json:"seatClass" binding:"required,oneof=economy business"`
	ContactEmail     string             `json:"contactEmail" binding:"required,email"`
	TotalPrice       *domain.Money      `json:"totalPrice"`
	Status           string             `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	UserID           *string            `json:"userId"`
}

func (r createBookingRequest) input() booking.CreateBookingInput {
	passengers := make([]domain.Passenger, 0, len(r.PassengerDetails))
	for _, p := range r.PassengerDetails {
		passengers = append(passengers, domain.Passenger{
			Title:          p.Title,
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			DateOfBirth:    p.DateOfBirth,
			Nationality:    p.Nationality,
			PassportNumber: p.PassportNumber,
			Type:           domain.PassengerType(p.Type),
		})
	}
	return booking.CreateBookingInput{
		FlightID:     r.FlightID,
		Passengers:   passengers,
		SeatClass:    domain.SeatClass(r.SeatClass),
		ContactEmail: r.ContactEmail,
		TotalPrice:   r.TotalPrice,
		Status:       domain.BookingStatus(r.Status),
		UserID:       r.UserID,
	}
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.listByUser)
	router.GET("/:reference", h.get)
	router.DELETE("/:reference", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid booking data", err)
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err, "Invalid booking data", "Flight not found")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) get(c *gin.Context) {
	view, err := h.service.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, err, "Invalid booking reference", "Booking not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) listByUser(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid booking query",
			Errors:  []fieldError{{Field: "userId", Message: "is required"}},
		})
		return
	}

	bookings, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Invalid booking query", "Booking not found")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	cancelled, err := h.service.CancelBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, err, "Invalid booking reference", "Booking not found")
		return
	}
	c.JSON(http.StatusOK, cancelled)
}
