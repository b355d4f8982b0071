package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// TokenTTL is how long issued bearer tokens stay valid.
const TokenTTL = 30 * 24 * time.Hour

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins []string
}

// Load reads configuration from the environment and performs minimal
// validation. A full DATABASE_URL takes precedence over the discrete
// DB_* variables.
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "8080"),
		DatabaseDSN: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), fallback(os.Getenv("DB_PORT"), "5432"),
		)
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

// HTTPAddress returns the host:port pair the server binds to.
func (c Config) HTTPAddress() string {
	return ":" + c.Port
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
