package api

import (
	_ "embed"
	"net/http"
	"os"

	"github.com/Domenick1991/flightbooking/internal/logging"
	"github.com/Domenick1991/flightbooking/internal/metrics"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/Domenick1991/flightbooking/internal/service/flights"
	"github.com/Domenick1991/flightbooking/internal/service/newsletter"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var openAPISpec []byte

const openAPIPath = "/openapi.json"

type Services struct {
	Flights    flights.FlightUseCase
	Bookings   booking.BookingUseCase
	Newsletter newsletter.NewsletterUseCase
}

// NewRouter wires every handler under /api plus the operational endpoints.
// swaggerFile overrides the embedded OpenAPI document when it exists on disk.
func NewRouter(services Services, swaggerFile string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logging.Middleware(), metrics.Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET(openAPIPath, openAPIHandler(swaggerFile))
	router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(openAPIPath))))

	apiGroup := router.Group("/api")
	NewFlightHandler(services.Flights).Register(apiGroup.Group("/flights"))
	NewDirectoryHandler(services.Flights).Register(apiGroup)
	NewBookingHandler(services.Bookings).Register(apiGroup.Group("/bookings"))
	NewNewsletterHandler(services.Newsletter).Register(apiGroup.Group("/newsletter"))

	return router
}

func openAPIHandler(swaggerFile string) gin.HandlerFunc {
	if swaggerFile != "" {
		if _, err := os.Stat(swaggerFile); err == nil {
			return func(c *gin.Context) {
				c.File(swaggerFile)
			}
		}
	}
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPISpec)
	}
}
