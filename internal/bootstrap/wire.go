package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/airreservation/config"
	"github.com/Domenick1991/airreservation/internal/cache"
	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/Domenick1991/airreservation/internal/service/flights"
	"github.com/Domenick1991/airreservation/internal/service/reservation"
)

type App struct {
	Reservations *reservation.Manager
	Catalogue    *flights.FlightService

	closers []func() error
}

// NewApp builds the reservation manager from cfg and seeds it. Redis and
// Kafka are optional; an empty address or broker list leaves them out.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	seedFlights, seedCustomers, err := cfg.Seed.Build()
	if err != nil {
		return nil, fmt.Errorf("build seed: %w", err)
	}

	app := &App{}
	var opts []reservation.ManagerOption
	var flightsCache flights.FlightCache

	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Catalogue.CacheTTL())
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("WARNING: redis unavailable, flights cache disabled: %v", err)
		} else {
			flightsCache = redisCache
			opts = append(opts, reservation.WithFlightsCache(redisCache))
		}
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: kafka unavailable, seat events disabled: %v", err)
			_ = producer.Close()
		} else {
			app.closers = append(app.closers, producer.Close)
			opts = append(opts, reservation.WithPublisher(cfg.Kafka.SeatEventsTopic, producer.WithRetries(cfg.Kafka.PublishRetries)))
		}
	}

	app.Reservations = reservation.NewManager(opts...)
	app.Reservations.Seed(ctx, seedFlights, seedCustomers)
	app.Catalogue = flights.NewFlightService(app.Reservations, flightsCache)
	return app, nil
}

func (a *App) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			log.Printf("close: %v", err)
		}
	}
}
