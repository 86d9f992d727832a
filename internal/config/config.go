package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the server.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// LogLevel configures logging verbosity.
	LogLevel string
}

// Load reads configuration from a .env file (if present) and environment
// variables, with defaults matching local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found")
	}

	port := 8000
	if p := os.Getenv("PORT"); p != "" {
		var err error
		port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
	}

	host := os.Getenv("HOST")
	if host == "" {
		host = "127.0.0.1"
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return &Config{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		LogLevel: level,
	}, nil
}
