package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Domenick1991/airreservation/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Catalogue CatalogueConfig `yaml:"catalogue"`
	Seed      SeedConfig      `yaml:"seed"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

// RedisConfig with an empty Addr disables the flight list cache.
type RedisConfig struct {
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	FlightsKey string `yaml:"flights_key"`
}

// KafkaConfig with no brokers disables seat events.
type KafkaConfig struct {
	Brokers         []string `yaml:"brokers"`
	SeatEventsTopic string   `yaml:"seat_events_topic"`
	GroupID         string   `yaml:"group_id"`
	PublishRetries  int      `yaml:"publish_retries"`
}

type CatalogueConfig struct {
	FlightsCacheTTL int `yaml:"flights_cache_ttl_seconds"`
}

func (c CatalogueConfig) CacheTTL() time.Duration {
	return time.Duration(c.FlightsCacheTTL) * time.Second
}

type SeedConfig struct {
	Flights   []SeedFlight   `yaml:"flights"`
	Customers []SeedCustomer `yaml:"customers"`
}

type SeedFlight struct {
	FlightNumber string `yaml:"flight_number"`
	Destination  string `yaml:"destination"`
	Capacity     int    `yaml:"capacity"`
}

type SeedCustomer struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// DefaultSeed is the demo data loaded when the config has no seed section.
func DefaultSeed() SeedConfig {
	return SeedConfig{
		Flights: []SeedFlight{
			{FlightNumber: "AI101", Destination: "New York", Capacity: 200},
			{FlightNumber: "AI102", Destination: "London", Capacity: 150},
			{FlightNumber: "AI103", Destination: "Dubai", Capacity: 100},
		},
		Customers: []SeedCustomer{
			{Name: "Alice", Email: "alice@example.com"},
			{Name: "Bob", Email: "bob@example.com"},
		},
	}
}

func Default() *Config {
	return &Config{
		HTTP:      HTTPConfig{Address: ":8080"},
		Kafka:     KafkaConfig{SeatEventsTopic: "seat-events", GroupID: "seat-notifier", PublishRetries: 3},
		Catalogue: CatalogueConfig{FlightsCacheTTL: 30},
		Seed:      DefaultSeed(),
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	seed := cfg.Seed
	cfg.Seed = SeedConfig{}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Seed.Flights) == 0 && len(cfg.Seed.Customers) == 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func (s SeedConfig) Build() ([]*domain.Flight, []domain.Customer, error) {
	flights := make([]*domain.Flight, 0, len(s.Flights))
	for _, sf := range s.Flights {
		f, err := domain.NewFlight(sf.FlightNumber, sf.Destination, sf.Capacity)
		if err != nil {
			return nil, nil, fmt.Errorf("seed flight %s: %w", sf.FlightNumber, err)
		}
		flights = append(flights, f)
	}

	customers := make([]domain.Customer, 0, len(s.Customers))
	for _, sc := range s.Customers {
		customers = append(customers, domain.Customer{Name: sc.Name, Email: sc.Email})
	}
	return flights, customers, nil
}
