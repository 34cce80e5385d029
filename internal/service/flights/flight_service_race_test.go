package flights

import (
	"context"
	"testing"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/service/reservation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is a single-key cache; beforeSet runs inside SetFlights ahead
// of the write.
type memoryCache struct {
	flights   []domain.FlightInfo
	beforeSet func()
}

func (c *memoryCache) GetFlights(context.Context) ([]domain.FlightInfo, error) {
	return c.flights, nil
}

func (c *memoryCache) SetFlights(_ context.Context, flights []domain.FlightInfo) error {
	if hook := c.beforeSet; hook != nil {
		c.beforeSet = nil
		hook()
	}
	c.flights = flights
	return nil
}

func (c *memoryCache) InvalidateFlights(context.Context) error {
	c.flights = nil
	return nil
}

func TestFlightService_List_BookingDuringCacheFillIsNotLost(t *testing.T) {
	ctx := context.Background()
	cache := &memoryCache{}
	manager := reservation.NewManager(reservation.WithFlightsCache(cache))

	flight, err := domain.NewFlight("AI101", "New York", 200)
	require.NoError(t, err)
	manager.AddFlight(ctx, flight)

	service := NewFlightService(manager, cache)

	// the booking lands after List took its snapshot but before it is stored
	cache.beforeSet = func() {
		_, err := manager.Book(ctx, "AI101")
		require.NoError(t, err)
	}

	first, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 0, first[0].SeatsBooked)

	second, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, 1, second[0].SeatsBooked)

	third, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestFlightService_List_CachesWhenNothingChanges(t *testing.T) {
	ctx := context.Background()
	cache := &memoryCache{}
	manager := reservation.NewManager(reservation.WithFlightsCache(cache))

	flight, err := domain.NewFlight("AI102", "London", 150)
	require.NoError(t, err)
	manager.AddFlight(ctx, flight)

	service := NewFlightService(manager, cache)

	_, err = service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cache.flights, 1)

	_, err = manager.Book(ctx, "AI102")
	require.NoError(t, err)
	assert.Nil(t, cache.flights)
}
