package reservation

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/google/uuid"
)

type ReservationUseCase interface {
	AddFlight(ctx context.Context, flight *domain.Flight)
	AddCustomer(customer domain.Customer)
	FindFlight(flightNumber string) (domain.FlightInfo, bool)
	Book(ctx context.Context, flightNumber string) (domain.FlightInfo, error)
	Cancel(ctx context.Context, flightNumber string) (domain.FlightInfo, error)
	ListFlights() []domain.FlightInfo
	ListCustomers() []domain.Customer
}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// FlightsInvalidator drops a cached flight listing after it goes stale.
type FlightsInvalidator interface {
	InvalidateFlights(ctx context.Context) error
}

// Manager owns the flights and customers of one running system. Flights keep
// insertion order and duplicate numbers are allowed; lookups take the first.
type Manager struct {
	mu        sync.RWMutex
	flights   []*domain.Flight
	customers []domain.Customer
	// version goes up with every change to a flight or the flight list.
	version uint64

	producer   Publisher
	eventTopic string
	cache      FlightsInvalidator
	now        func() time.Time
}

type ManagerOption func(*Manager)

func WithPublisher(topic string, producer Publisher) ManagerOption {
	return func(m *Manager) {
		m.eventTopic = topic
		m.producer = producer
	}
}

func WithFlightsCache(cache FlightsInvalidator) ManagerOption {
	return func(m *Manager) {
		m.cache = cache
	}
}

func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Seed(ctx context.Context, flights []*domain.Flight, customers []domain.Customer) {
	for _, f := range flights {
		m.AddFlight(ctx, f)
	}
	for _, c := range customers {
		m.AddCustomer(c)
	}
}

func (m *Manager) AddFlight(ctx context.Context, flight *domain.Flight) {
	m.mu.Lock()
	m.flights = append(m.flights, flight)
	m.version++
	m.mu.Unlock()

	m.invalidate(ctx)
}

func (m *Manager) AddCustomer(customer domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers = append(m.customers, customer)
}

func (m *Manager) FindFlight(flightNumber string) (domain.FlightInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f := m.lookup(flightNumber)
	if f == nil {
		return domain.FlightInfo{}, false
	}
	return f.Info(), true
}

// Book takes a seat on the first flight numbered flightNumber and returns the
// flight as it is afterwards.
func (m *Manager) Book(ctx context.Context, flightNumber string) (domain.FlightInfo, error) {
	return m.apply(ctx, flightNumber, kafka.EventSeatBooked, (*domain.Flight).BookSeat)
}

func (m *Manager) Cancel(ctx context.Context, flightNumber string) (domain.FlightInfo, error) {
	return m.apply(ctx, flightNumber, kafka.EventSeatCancelled, (*domain.Flight).CancelSeat)
}

func (m *Manager) ListFlights() []domain.FlightInfo {
	flights, _ := m.FlightsSnapshot()
	return flights
}

// FlightsSnapshot returns the flight list together with the version it was
// taken at.
func (m *Manager) FlightsSnapshot() ([]domain.FlightInfo, uint64) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.FlightInfo, 0, len(m.flights))
	for _, f := range m.flights {
		out = append(out, f.Info())
	}
	return out, m.version
}

func (m *Manager) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

func (m *Manager) ListCustomers() []domain.Customer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Customer, len(m.customers))
	copy(out, m.customers)
	return out
}

func (m *Manager) apply(ctx context.Context, flightNumber, eventType string, op func(*domain.Flight) error) (domain.FlightInfo, error) {
	m.mu.Lock()
	f := m.lookup(flightNumber)
	if f == nil {
		m.mu.Unlock()
		return domain.FlightInfo{}, domain.ErrFlightNotFound
	}
	err := op(f)
	if err == nil {
		m.version++
	}
	info := f.Info()
	m.mu.Unlock()

	if err != nil {
		return info, err
	}

	m.invalidate(ctx)
	if err := m.publish(ctx, eventType, info); err != nil {
		log.Printf("WARNING: failed to publish %s event for flight %s: %v", eventType, info.FlightNumber, err)
	}
	return info, nil
}

// lookup must be called with mu held.
func (m *Manager) lookup(flightNumber string) *domain.Flight {
	for _, f := range m.flights {
		if f.FlightNumber() == flightNumber {
			return f
		}
	}
	return nil
}

func (m *Manager) invalidate(ctx context.Context) {
	if m.cache == nil {
		return
	}
	if err := m.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("WARNING: failed to invalidate flights cache: %v", err)
	}
}

func (m *Manager) publish(ctx context.Context, eventType string, info domain.FlightInfo) error {
	if m.producer == nil || m.eventTopic == "" {
		return nil
	}
	event := kafka.SeatEvent{
		ID:           uuid.NewString(),
		Type:         eventType,
		FlightNumber: info.FlightNumber,
		Destination:  info.Destination,
		SeatsBooked:  info.SeatsBooked,
		Capacity:     info.Capacity,
		OccurredAt:   m.now(),
	}
	return m.producer.Publish(ctx, m.eventTopic, info.FlightNumber, event)
}

var _ ReservationUseCase = (*Manager)(nil)
