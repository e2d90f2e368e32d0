package api

import (
	"net/http"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/search"
	"github.com/Domenick1991/flightbooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type searchRequest struct {
	From          string `form:"from" binding:"required"`
	To            string `form:"to" binding:"required"`
	DepartureDate string `form:"departureDate" binding:"required"`
	ReturnDate    string `form:"returnDate"`
	Adults        int    `form:"adults,default=1" binding:"min=1,max=9"`
	Children      int    `form:"children,default=0" binding:"min=0,max=9"`
	Infants       int    `form:"infants,default=0" binding:"min=0,max=9"`
	SeatClass     string `form:"seatClass,default=economy" binding:"oneof=economy business"`
	TripType      string `form:"tripType,default=roundtrip" binding:"oneof=roundtrip oneway multicity"`
	TimeOfDay     string `form:"timeOfDay,default=all" binding:"oneof=all morning afternoon evening"`
	SortBy        string `form:"sortBy,default=price" binding:"oneof=price duration departure arrival"`
}

type quoteRequest struct {
	SeatClass string `form:"seatClass,default=economy" binding:"oneof=economy business"`
	Adults    int    `form:"adults,default=1" binding:"min=1,max=9"`
	Children  int    `form:"children,default=0" binding:"min=0,max=9"`
	Infants   int    `form:"infants,default=0" binding:"min=0,max=9"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
	router.GET("/:id/quote", h.quote)
}

func (h *FlightHandler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "Invalid search parameters", err)
		return
	}

	result, err := h.service.Search(c.Request.Context(), flights.SearchQuery{
		From:          req.From,
		To:            req.To,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers: domain.PassengerCounts{
			Adults:   req.Adults,
			Children: req.Children,
			Infants:  req.Infants,
		},
		SeatClass: domain.SeatClass(req.SeatClass),
		TripType:  req.TripType,
		TimeOfDay: search.TimeOfDay(req.TimeOfDay),
		SortBy:    search.SortKey(req.SortBy),
	})
	if err != nil {
		respondError(c, err, "Invalid search parameters", "Flight not found")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Invalid flight id", "Flight not found")
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "Invalid quote parameters", err)
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), c.Param("id"), domain.SeatClass(req.SeatClass), domain.PassengerCounts{
		Adults:   req.Adults,
		Children: req.Children,
		Infants:  req.Infants,
	})
	if err != nil {
		respondError(c, err, "Invalid quote parameters", "Flight not found")
		return
	}
	c.JSON(http.StatusOK, quote)
}
