package api

import (
	"net/http"

	"github.com/Domenick1991/flightbooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the airport autocomplete and destination listings.
type DirectoryHandler struct {
	service flights.FlightUseCase
}

func NewDirectoryHandler(service flights.FlightUseCase) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

func (h *DirectoryHandler) Register(router *gin.RouterGroup) {
	router.GET("/airports", h.airports)
	router.GET("/destinations", h.destinations)
	router.GET("/destinations/:id", h.destination)
}

func (h *DirectoryHandler) airports(c *gin.Context) {
	airports, err := h.service.Airports(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "Invalid airport query", "Airport not found")
		return
	}
	c.JSON(http.StatusOK, airports)
}

// destinations treats anything but popular=true as the full list.
func (h *DirectoryHandler) destinations(c *gin.Context) {
	popular := c.Query("popular") == "true"
	destinations, err := h.service.Destinations(c.Request.Context(), popular)
	if err != nil {
		respondError(c, err, "Invalid destination query", "Destination not found")
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *DirectoryHandler) destination(c *gin.Context) {
	destination, err := h.service.Destination(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Invalid destination id", "Destination not found")
		return
	}
	c.JSON(http.StatusOK, destination)
}
