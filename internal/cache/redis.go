package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/airreservation/config"
	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultFlightsKey = "cache:flights"

type RedisCache struct {
	client     redis.Cmdable
	flightsKey string
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return newRedisCache(client, cfg.FlightsKey, flightsTTL)
}

func newRedisCache(client redis.Cmdable, key string, flightsTTL time.Duration) *RedisCache {
	if key == "" {
		key = defaultFlightsKey
	}
	return &RedisCache{
		client:     client,
		flightsKey: key,
		flightsTTL: flightsTTL,
	}
}

// GetFlights returns nil without an error on a cache miss.
func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.FlightInfo, error) {
	data, err := c.client.Get(ctx, c.flightsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightInfo
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.FlightInfo) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.flightsKey, payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, c.flightsKey).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
