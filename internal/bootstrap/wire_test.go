package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airreservation/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_InMemory(t *testing.T) {
	cfg := config.Default()

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	flights, err := app.Catalogue.List(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 3)
	assert.Equal(t, "AI101", flights[0].FlightNumber)
	assert.Len(t, app.Reservations.ListCustomers(), 2)
}

func TestNewApp_InvalidSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = config.SeedConfig{Flights: []config.SeedFlight{{FlightNumber: "BAD", Capacity: -1}}}

	_, err := NewApp(context.Background(), cfg)
	assert.ErrorContains(t, err, "build seed")
}

func TestNewApp_UnreachableSideChannelsFallBackToMemory(t *testing.T) {
	cfg := config.Default()
	cfg.Redis.Addr = "127.0.0.1:1"
	cfg.Kafka.Brokers = []string{"127.0.0.1:1"}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	app, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	defer app.Close()

	info, err := app.Reservations.Book(context.Background(), "AI101")
	require.NoError(t, err)
	assert.Equal(t, 1, info.SeatsBooked)

	flights, err := app.Catalogue.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, flights[0].SeatsBooked)
}
