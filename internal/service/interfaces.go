package service

import (
	"context"

	"directory-helper/internal/directory"
)

// DirectoryLoader defines the interface for loading a site directory.
// Used for dependency injection and mocking in tests.
type DirectoryLoader interface {
	// Load fetches and parses the feed for slug.
	Load(ctx context.Context, slug string) (*directory.SiteDirectory, error)
}

// ReadinessChecker reports whether the upstream feed is reachable.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}
