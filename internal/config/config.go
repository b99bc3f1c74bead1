// Package config loads runtime settings from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds settings for the view server and the reference backend
type Config struct {
	Port               string        `env:"PORT"                 envDefault:"8080"`
	BackendURL         string        `env:"BACKEND_URL"          envDefault:"http://localhost:5000"`
	BackendTimeout     time.Duration `env:"BACKEND_TIMEOUT"      envDefault:"10s"`
	BackendRPS         float64       `env:"BACKEND_RPS"          envDefault:"10"`
	BackendBurst       int           `env:"BACKEND_BURST"        envDefault:"5"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	FrontendDistPath   string        `env:"FRONTEND_DIST_PATH"`
	SearchDebounce     time.Duration `env:"SEARCH_DEBOUNCE"      envDefault:"300ms"`
	NotificationTTL    time.Duration `env:"NOTIFICATION_TTL"     envDefault:"5s"`
	SalesCacheSize     int           `env:"SALES_CACHE_SIZE"     envDefault:"128"`
	SalesCacheTTL      time.Duration `env:"SALES_CACHE_TTL"      envDefault:"1m"`

	// Zero disables periodic refetching; the snapshot then only changes on
	// startup, explicit refresh and after creates.
	SnapshotRefreshInterval time.Duration `env:"SNAPSHOT_REFRESH_INTERVAL" envDefault:"0s"`

	// Reference backend
	DBPath         string `env:"DB_PATH"          envDefault:"./sports_cards.db"`
	DevBackendPort string `env:"DEV_BACKEND_PORT" envDefault:"5000"`
	SeedSampleData bool   `env:"SEED_SAMPLE_DATA" envDefault:"true"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	return &cfg, nil
}
