package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"sem-planner/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	App configs.App `envPrefix:"APP_"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	Store configs.Store `envPrefix:"STORE_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Redis   configs.Redis   `envPrefix:"REDIS_"`
	Kafka   configs.Kafka   `envPrefix:"KAFKA_"`
	Planner configs.Planner `envPrefix:"PLANNER_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory, when present, is applied first and
// never overrides variables that are already set. All fields are loaded
// with their specified defaults when no environment variable is provided.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	switch cfg.Store.Driver {
	case configs.DriverPostgres, configs.DriverSQLite:
	default:
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	return cfg, nil
}
