package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-hris-backoffice/internal/shared/connection"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"

	EventsNone   = "none"
	EventsOutbox = "outbox"
	EventsKafka  = "kafka"
)

type Config struct {
	Port           string
	Env            string
	StoreBackend   string
	EventsMode     string
	Postgres       connection.PostgresConfig
	RedisAddr      string
	KafkaBroker    string
	RateLimitRPS   float64
	RateLimitBurst int
	ConnectRetries int
}

// LoadConfig reads the process environment. Call godotenv.Load first to pick
// up a .env file.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:         connection.Port(os.Getenv("PORT"), 3000),
		Env:          envOr("APP_ENV", "development"),
		StoreBackend: strings.ToLower(envOr("STORE_BACKEND", StoreMemory)),
		EventsMode:   strings.ToLower(envOr("EVENTS_MODE", EventsNone)),
		Postgres: connection.PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     envOr("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  envOr("DB_SSLMODE", "disable"),
		},
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		ConnectRetries: 5,
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(envOr("RATE_LIMIT_RPS", "10"), 64); err != nil || cfg.RateLimitRPS <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be a positive number")
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(envOr("RATE_LIMIT_BURST", "20")); err != nil || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be a positive integer")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreBackend {
	case StoreMemory:
	case StorePostgres:
		if err := c.requirePostgres(); err != nil {
			return err
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for STORE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	switch c.EventsMode {
	case EventsNone:
	case EventsOutbox:
		if err := c.requirePostgres(); err != nil {
			return fmt.Errorf("EVENTS_MODE=outbox: %w", err)
		}
	case EventsKafka:
		if c.KafkaBroker == "" {
			return fmt.Errorf("KAFKA_BROKER is required for EVENTS_MODE=kafka")
		}
	default:
		return fmt.Errorf("unknown EVENTS_MODE %q", c.EventsMode)
	}

	return nil
}

func (c Config) NeedsPostgres() bool {
	return c.StoreBackend == StorePostgres || c.EventsMode == EventsOutbox
}

func (c Config) requirePostgres() error {
	if c.Postgres.Host == "" || c.Postgres.User == "" || c.Postgres.Name == "" {
		return fmt.Errorf("DB_HOST, DB_USER and DB_NAME are required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
