package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// BcryptCost is fixed; tuning the hash parameters is out of scope.
const BcryptCost = 11

// Config carries everything the application needs at startup. It is built
// once in main and injected, never read from package globals.
type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     []byte
	TokenLifetime time.Duration
	LogLevel      string
}

// Load reads configuration from the environment. JWT_SECRET is required;
// everything else has a default.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}

	lifetime := 3600
	if v := os.Getenv("TOKEN_LIFETIME"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("TOKEN_LIFETIME must be an integer number of seconds")
		}
		lifetime = parsed
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		Port:          port,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     []byte(secret),
		TokenLifetime: time.Duration(lifetime) * time.Second,
		LogLevel:      logLevel,
	}, nil
}
