package config

import (
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Feed configuration
	FeedURI     string
	FeedTimeout time.Duration

	// Base origins used when rewriting relative resource paths
	DirectoryURI string
	ArchiveURI   string

	// Placeholder assets used when a feed record omits optional fields
	CollapseScriptURI string
	PlaceholderImage  string
	PlaceholderAuthor string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		ReadTimeout:       getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		FeedURI:           getEnv("FEED_URI", "http://localhost:9000/feed/sites/"),
		FeedTimeout:       getEnvDuration("FEED_TIMEOUT", 10*time.Second),
		DirectoryURI:      getEnv("DIRECTORY_URI", "http://localhost:9000"),
		ArchiveURI:        getEnv("ARCHIVE_URI", "http://localhost:9000/news/"),
		CollapseScriptURI: getEnv("COLLAPSE_SCRIPT_URI", "/js/staff-collapse.js"),
		PlaceholderImage:  getEnv("PLACEHOLDER_IMAGE", "/img/placeholder.png"),
		PlaceholderAuthor: getEnv("PLACEHOLDER_AUTHOR", "Staff Writer"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required),
		validation.Field(&c.FeedURI, validation.Required, is.URL),
		validation.Field(&c.DirectoryURI, validation.Required, is.URL),
		validation.Field(&c.ArchiveURI, validation.Required, is.URL),
		validation.Field(&c.PlaceholderImage, validation.Required),
		validation.Field(&c.PlaceholderAuthor, validation.Required),
		validation.Field(&c.FeedTimeout, validation.Min(time.Second)),
	)
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
