package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"directory-helper/internal/config"
	"directory-helper/internal/directory"
	"directory-helper/internal/feed"
	"directory-helper/internal/handler"
	"directory-helper/internal/logger"
	"directory-helper/internal/middleware"
	"directory-helper/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logger.Init(cfg.LogLevel)

	// Feed client and rendering options
	feedClient := feed.NewHTTPClient(cfg.FeedURI, cfg.FeedTimeout)
	opts := directory.Options{
		DirectoryURI:      cfg.DirectoryURI,
		ArchiveURI:        cfg.ArchiveURI,
		CollapseScriptURI: cfg.CollapseScriptURI,
		PlaceholderImage:  cfg.PlaceholderImage,
		PlaceholderAuthor: cfg.PlaceholderAuthor,
	}

	// Initialize services
	directoryService := service.NewDirectoryService(feedClient, opts)

	// Initialize handlers
	fragmentHandler := handler.NewFragmentHandler(directoryService)
	healthHandler := handler.NewHealthHandler(feedClient)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		fragments := v1.Group("/sites/:slug/fragments")
		{
			fragments.GET("/alert", fragmentHandler.Alert)
			fragments.GET("/site-alert", fragmentHandler.SiteAlert)
			fragments.GET("/alerts", fragmentHandler.Alerts)
			fragments.GET("/news", fragmentHandler.News)
			fragments.GET("/billboard", fragmentHandler.Billboard)
			fragments.GET("/staff", fragmentHandler.Staff)
			fragments.GET("/roles/:name", fragmentHandler.Role)
			fragments.GET("/documents/:doc", fragmentHandler.Document)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("feed", cfg.FeedURI))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
