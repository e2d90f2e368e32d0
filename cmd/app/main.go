package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightbooking/api"
	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/bootstrap"
	"github.com/Domenick1991/flightbooking/internal/cache"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/logging"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/Domenick1991/flightbooking/internal/service/flights"
	"github.com/Domenick1991/flightbooking/internal/service/newsletter"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logging.Init(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The flight catalog is reference data and always lives in memory.
	store := repository.NewSeededMemoryStore()

	var bookingRepo repository.BookingRepository = store
	if cfg.Database.Driver == config.DriverPostgres {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			logrus.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()

		pgRepo := repository.NewBookingRepository(pool)
		if err := pgRepo.Migrate(ctx); err != nil {
			logrus.Fatalf("migrate bookings: %v", err)
		}
		bookingRepo = pgRepo
	}

	var flightOpts []flights.FlightServiceOption
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Booking.SearchCacheDuration())
		if err := redisCache.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("redis unavailable, search cache disabled")
		} else {
			flightOpts = append(flightOpts, flights.WithSearchCache(redisCache))
		}
	}
	flightService := flights.NewFlightService(store, store, store, flightOpts...)

	bookingOpts := []booking.BookingServiceOption{
		booking.WithReferenceGenerator(booking.RandomReference(cfg.Booking.ReferencePrefix)),
		booking.WithMaxReferenceAttempts(cfg.Booking.ReferenceMaxRetries),
	}
	var newsletterOpts []newsletter.NewsletterServiceOption
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()

		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
		newsletterOpts = append(newsletterOpts, newsletter.WithProducer(producer, cfg.Kafka.NotificationsTopic))
	}

	services := api.Services{
		Flights:    flightService,
		Bookings:   booking.NewBookingService(bookingRepo, flightService, bookingOpts...),
		Newsletter: newsletter.NewNewsletterService(newsletterOpts...),
	}

	logrus.WithField("driver", cfg.Database.Driver).Info("starting flight booking API")
	if err := bootstrap.Run(ctx, cfg, services); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
