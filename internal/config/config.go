package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Port     string `env:"PORT" envDefault:"3000"`

	// StoreBackend selects where products and carts live. "memory" needs
	// no Postgres or Redis and serves the seeded sample catalog.
	StoreBackend string `env:"STORE_BACKEND" envDefault:"postgres"`
	DBURL        string `env:"DB_URL"`
	RedisAddr    string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB      int    `env:"REDIS_DB" envDefault:"0"`

	KafkaBroker  string `env:"KAFKA_BROKER" envDefault:"localhost:9092"`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"order.events"`
	KafkaGroupID string `env:"KAFKA_GROUP_ID" envDefault:"cart-consumer-group"`

	PageSize        int           `env:"PAGE_SIZE" envDefault:"4"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionSecure   bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	ProductCacheTTL time.Duration `env:"PRODUCT_CACHE_TTL" envDefault:"10m"`

	ConnectRetries int `env:"CONNECT_RETRIES" envDefault:"5"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	switch c.StoreBackend {
	case BackendPostgres:
		if c.DBURL == "" {
			return fmt.Errorf("DB_URL is required when STORE_BACKEND=%s", BackendPostgres)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
