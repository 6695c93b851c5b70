package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetAddr() string
	GetLogFormat() string
	GetLogLevel() string
	GetSchemaFile() string
	GetRateLimit() int
}

// Config holds all configuration for the application.
type Config struct {
	Addr       string
	LogFormat  string
	LogLevel   string
	SchemaFile string
	RateLimit  int
}

// Defaults used when the environment leaves a value unset.
const (
	DefaultAddr      = ":8080"
	DefaultRateLimit = 10
)

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv reads configuration from the environment only.
func FromEnv() *Config {
	cfg := &Config{
		Addr:       getEnv("APP_ADDR", DefaultAddr),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
		LogLevel:   getEnv("LOG_LEVEL", "debug"),
		SchemaFile: os.Getenv("SCHEMA_FILE"),
		RateLimit:  DefaultRateLimit,
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Printf("Ignoring invalid RATE_LIMIT %q, using %d", v, DefaultRateLimit)
		} else {
			cfg.RateLimit = n
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAddr() string       { return c.Addr }
func (c *Config) GetLogFormat() string  { return c.LogFormat }
func (c *Config) GetLogLevel() string   { return c.LogLevel }
func (c *Config) GetSchemaFile() string { return c.SchemaFile }
func (c *Config) GetRateLimit() int     { return c.RateLimit }
