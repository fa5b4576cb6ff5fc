package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"boxing-platform"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres    Postgres
	Redis       Redis
	Security    Security
	Ring        Ring
	Leaderboard Leaderboard
	Random      Random
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host            string        `env:"PG_HOST,notEmpty"`
	Port            int           `env:"PG_PORT" envDefault:"5432"`
	User            string        `env:"PG_USER,notEmpty"`
	Password        string        `env:"PG_PASSWORD,notEmpty"`
	Database        string        `env:"PG_DATABASE,notEmpty"`
	SSLMode         string        `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// Redis holds cache + ring state configuration.
type Redis struct {
	Addr     string `env:"REDIS_ADDR,notEmpty"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Security stores secrets for signing and auth. AdminJWTSecret is optional;
// when unset the destructive endpoints are left open.
type Security struct {
	AdminJWTSecret string `env:"ADMIN_JWT_SECRET"`
}

// Ring governs the fight-eligible boxer set.
type Ring struct {
	StateKey string        `env:"RING_STATE_KEY" envDefault:"ring:members"`
	Capacity int           `env:"RING_CAPACITY" envDefault:"2"`
	StateTTL time.Duration `env:"RING_STATE_TTL" envDefault:"2h"`
}

// Leaderboard governs leaderboard caching behavior.
type Leaderboard struct {
	CacheTTL time.Duration `env:"LEADERBOARD_CACHE_TTL" envDefault:"30s"`
}

// Random configures the external random-number source used by fight simulation.
type Random struct {
	BaseURL     string        `env:"RANDOM_ORG_URL"`
	HTTPTimeout time.Duration `env:"RANDOM_HTTP_TIMEOUT" envDefault:"3s"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
