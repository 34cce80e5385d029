package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/airreservation/config"
	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps string values in a map and fails every call with err when
// it is set. Only the commands RedisCache uses are implemented.
type fakeRedis struct {
	redis.Cmdable
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

var cachedFlights = []domain.FlightInfo{
	{FlightNumber: "AI101", Destination: "New York", Capacity: 200, SeatsBooked: 2, SeatsAvailable: 198},
	{FlightNumber: "AI103", Destination: "Dubai", Capacity: 100, SeatsBooked: 0, SeatsAvailable: 100},
}

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Minute)

	assert.NotNil(t, c)
	assert.Equal(t, defaultFlightsKey, c.flightsKey)
	assert.Equal(t, time.Minute, c.flightsTTL)
}

func TestNewRedisCache_CustomKey(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379", FlightsKey: "demo:flights"}, time.Second)

	assert.Equal(t, "demo:flights", c.flightsKey)
}

func TestRedisCache_GetFlightsMiss(t *testing.T) {
	c := newRedisCache(newFakeRedis(), "", time.Minute)

	flights, err := c.GetFlights(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, flights)
}

func TestRedisCache_SetThenGet(t *testing.T) {
	store := newFakeRedis()
	c := newRedisCache(store, "demo:flights", 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.SetFlights(ctx, cachedFlights))
	assert.Equal(t, 30*time.Second, store.ttls["demo:flights"])

	flights, err := c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Equal(t, cachedFlights, flights)
}

func TestRedisCache_EmptyListIsAHit(t *testing.T) {
	c := newRedisCache(newFakeRedis(), "", time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetFlights(ctx, []domain.FlightInfo{}))

	flights, err := c.GetFlights(ctx)
	require.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
}

func TestRedisCache_InvalidateFlights(t *testing.T) {
	store := newFakeRedis()
	c := newRedisCache(store, "", time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetFlights(ctx, cachedFlights))
	require.NoError(t, c.InvalidateFlights(ctx))

	flights, err := c.GetFlights(ctx)
	assert.NoError(t, err)
	assert.Nil(t, flights)

	// deleting a missing key is not an error
	assert.NoError(t, c.InvalidateFlights(ctx))
}

func TestRedisCache_CorruptPayload(t *testing.T) {
	store := newFakeRedis()
	store.values[defaultFlightsKey] = "{not json"
	c := newRedisCache(store, "", time.Minute)

	flights, err := c.GetFlights(context.Background())

	assert.Error(t, err)
	assert.Nil(t, flights)
}

func TestRedisCache_ClientErrors(t *testing.T) {
	store := newFakeRedis()
	store.err = errors.New("connection refused")
	c := newRedisCache(store, "", time.Minute)
	ctx := context.Background()

	_, err := c.GetFlights(ctx)
	assert.ErrorIs(t, err, store.err)
	assert.ErrorIs(t, c.SetFlights(ctx, cachedFlights), store.err)
	assert.ErrorIs(t, c.InvalidateFlights(ctx), store.err)
}
