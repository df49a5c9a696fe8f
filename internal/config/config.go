package config

import (
	"fmt"
	"os"
	"strconv"
)

// Account sources the server can start from.
const (
	SourceSample   = "sample"
	SourcePostgres = "postgres"
	SourceNone     = "none"
)

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBName        string
	DBUser        string
	DBPass        string
	AccountSource string
	DefaultMonths int
	Currency      string
	Locale        string
}

func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	source := env("ACCOUNT_SOURCE", SourceSample)
	switch source {
	case SourceSample, SourcePostgres, SourceNone:
	default:
		return nil, fmt.Errorf("ACCOUNT_SOURCE: unknown source %q", source)
	}

	months, err := strconv.Atoi(env("DEFAULT_MONTHS", "6"))
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_MONTHS: %w", err)
	}

	return &Config{
		HTTPPort:      env("HTTP_PORT", "8083"), // sensible default for local dev
		DBHost:        env("DB_HOST", "localhost"),
		DBPort:        env("DB_PORT", "5432"),
		DBName:        env("DB_NAME", "interestbank"),
		DBUser:        env("DB_USER", "interestbank"),
		DBPass:        env("DB_PASS", "interestbank"),
		AccountSource: source,
		DefaultMonths: months,
		Currency:      env("CURRENCY", "USD"),
		Locale:        env("LOCALE", "en-US"),
	}, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

func (c *Config) PostgresDSN() string {
	// pgx format
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName,
	)
}
