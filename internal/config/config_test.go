package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"FEED_URI",
		"FEED_TIMEOUT",
		"DIRECTORY_URI",
		"ARCHIVE_URI",
		"COLLAPSE_SCRIPT_URI",
		"PLACEHOLDER_IMAGE",
		"PLACEHOLDER_AUTHOR",
		"LOG_LEVEL",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.FeedURI != "http://localhost:9000/feed/sites/" {
			t.Errorf("FeedURI = %v, want http://localhost:9000/feed/sites/", cfg.FeedURI)
		}
		if cfg.FeedTimeout != 10*time.Second {
			t.Errorf("FeedTimeout = %v, want 10s", cfg.FeedTimeout)
		}
		if cfg.DirectoryURI != "http://localhost:9000" {
			t.Errorf("DirectoryURI = %v, want http://localhost:9000", cfg.DirectoryURI)
		}
		if cfg.PlaceholderAuthor != "Staff Writer" {
			t.Errorf("PlaceholderAuthor = %v, want Staff Writer", cfg.PlaceholderAuthor)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9999")
		os.Setenv("FEED_URI", "https://feed.example.edu/sites/")
		os.Setenv("FEED_TIMEOUT", "5s")
		os.Setenv("PLACEHOLDER_AUTHOR", "Newsroom")
		defer func() {
			os.Unsetenv("SERVER_PORT")
			os.Unsetenv("FEED_URI")
			os.Unsetenv("FEED_TIMEOUT")
			os.Unsetenv("PLACEHOLDER_AUTHOR")
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9999" {
			t.Errorf("ServerPort = %v, want 9999", cfg.ServerPort)
		}
		if cfg.FeedURI != "https://feed.example.edu/sites/" {
			t.Errorf("FeedURI = %v, want override", cfg.FeedURI)
		}
		if cfg.FeedTimeout != 5*time.Second {
			t.Errorf("FeedTimeout = %v, want 5s", cfg.FeedTimeout)
		}
		if cfg.PlaceholderAuthor != "Newsroom" {
			t.Errorf("PlaceholderAuthor = %v, want Newsroom", cfg.PlaceholderAuthor)
		}
	})

	t.Run("invalid feed URI rejected", func(t *testing.T) {
		os.Setenv("FEED_URI", "not a url")
		defer os.Unsetenv("FEED_URI")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for invalid FEED_URI, got nil")
		}
	})

	t.Run("invalid duration falls back to default", func(t *testing.T) {
		os.Setenv("FEED_TIMEOUT", "bogus")
		defer os.Unsetenv("FEED_TIMEOUT")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.FeedTimeout != 10*time.Second {
			t.Errorf("FeedTimeout = %v, want default 10s", cfg.FeedTimeout)
		}
	})
}
