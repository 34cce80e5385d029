package flights

import (
	"context"
	"log"

	"github.com/Domenick1991/airreservation/internal/domain"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.FlightInfo, error)
	Get(ctx context.Context, flightNumber string) (domain.FlightInfo, error)
}

// Source is the authoritative flight list, normally the reservation manager.
// Version must change whenever the list or any seat count changes.
type Source interface {
	FlightsSnapshot() ([]domain.FlightInfo, uint64)
	Version() uint64
	FindFlight(flightNumber string) (domain.FlightInfo, bool)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.FlightInfo, error)
	SetFlights(ctx context.Context, flights []domain.FlightInfo) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	source Source
	cache  FlightCache
}

func NewFlightService(source Source, cache FlightCache) *FlightService {
	return &FlightService{source: source, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.FlightInfo, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, version := s.source.FlightsSnapshot()
	if s.cache != nil {
		s.store(ctx, flights, version)
	}
	return flights, nil
}

// store caches flights unless the source moved on while they were written.
// A mutation bumps the version before it invalidates, so either its own
// invalidation runs after our write or we see the new version here.
func (s *FlightService) store(ctx context.Context, flights []domain.FlightInfo, version uint64) {
	if err := s.cache.SetFlights(ctx, flights); err != nil {
		log.Printf("WARNING: failed to cache flights: %v", err)
		return
	}
	if s.source.Version() == version {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("WARNING: failed to drop stale flights cache: %v", err)
	}
}

func (s *FlightService) Get(_ context.Context, flightNumber string) (domain.FlightInfo, error) {
	flight, ok := s.source.FindFlight(flightNumber)
	if !ok {
		return domain.FlightInfo{}, domain.ErrFlightNotFound
	}
	return flight, nil
}

var _ FlightUseCase = (*FlightService)(nil)
