package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port        string
	Env         string
	FrontendURL string
	Auth        AuthConfig
	Postgres    PostgresConfig
	Email       EmailConfig
}

type AuthConfig struct {
	JWTSecret    string
	CookieSecure bool
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type EmailConfig struct {
	APIKey string
	From   string
}

// Load builds the configuration from the environment and validates it.
// A missing JWT secret is an error: running with a default secret would
// make every issued token forgeable.
func Load() (Config, error) {
	env := getenv("APP_ENV", "development")

	cfg := Config{
		Port:        getenv("PORT", "3000"),
		Env:         env,
		FrontendURL: os.Getenv("FRONTEND_URL"),
		Auth: AuthConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			CookieSecure: env == "production",
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Email: EmailConfig{
			APIKey: os.Getenv("RESEND_API_KEY"),
			From:   getenv("EMAIL_FROM", "contacto@lifelinesaludmental.com"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Postgres.DatabaseURL == "" && (cfg.Postgres.User == "" || cfg.Postgres.Database == "") {
		return Config{}, fmt.Errorf("missing required env: DATABASE_URL or PGUSER/PGDATABASE")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
