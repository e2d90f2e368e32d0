package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests The total number of handled HTTP requests (counter)
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flightbooking",
			Name:      "http_requests_total",
			Help:      "The total number of handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration Time spent serving HTTP requests (histogram)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "flightbooking",
			Name:      "http_request_duration_seconds",
			Help:      "Time spent serving HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// FlightSearches The total number of flight searches by cache outcome (counter)
	FlightSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flightbooking",
			Name:      "flight_searches_total",
			Help:      "The total number of flight searches",
		},
		[]string{"cache"},
	)

	// BookingsCreated The total number of created bookings (counter)
	BookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flightbooking",
			Name:      "bookings_created_total",
			Help:      "The total number of created bookings",
		},
		[]string{"seat_class"},
	)

	// EventsPublishFailed The total number of events that could not be published (counter)
	EventsPublishFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flightbooking",
			Name:      "events_publish_failed_total",
			Help:      "The total number of events that could not be published",
		},
		[]string{"type"},
	)
)

// Middleware records request count and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
