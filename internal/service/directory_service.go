package service

import (
	"context"
	"log/slog"

	"directory-helper/internal/directory"
	"directory-helper/internal/feed"
	"directory-helper/internal/logger"
	"directory-helper/internal/metrics"
)

// DirectoryService loads site directories from the feed. It is the
// only place the feed client and rendering options meet; handlers and
// callers deal in *directory.SiteDirectory values.
type DirectoryService struct {
	client feed.Client
	opts   directory.Options
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(client feed.Client, opts directory.Options) *DirectoryService {
	return &DirectoryService{
		client: client,
		opts:   opts,
	}
}

// Load fetches and parses the feed for slug. Each call hits the feed;
// callers reuse the returned directory across fragment accessors
// within a single page render.
func (s *DirectoryService) Load(ctx context.Context, slug string) (*directory.SiteDirectory, error) {
	timer := metrics.NewTimer()

	d, err := directory.New(ctx, slug, s.client, s.opts)
	if err != nil {
		metrics.ObserveFeedFetch("error", timer.Seconds())
		logger.WithSite(slug).ErrorContext(ctx, "failed to load site directory",
			slog.String("error", err.Error()))
		return nil, err
	}

	metrics.ObserveFeedFetch("success", timer.Seconds())
	return d, nil
}
