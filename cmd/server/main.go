package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/pokebingo/pokebingo/configs"
	"github.com/pokebingo/pokebingo/internal/application/services"
	"github.com/pokebingo/pokebingo/internal/core/ports"
	"github.com/pokebingo/pokebingo/internal/infrastructure/discord"
	"github.com/pokebingo/pokebingo/internal/infrastructure/health"
	"github.com/pokebingo/pokebingo/internal/infrastructure/httpserver"
	"github.com/pokebingo/pokebingo/internal/infrastructure/memcache"
	"github.com/pokebingo/pokebingo/internal/infrastructure/upstream"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting Pokemon Bingo server...")

	// The image cache lives for the process's lifetime and is explicitly
	// owned here; no package-level singleton.
	imageCache := memcache.New(memcache.Config{
		MaxEntries:         cfg.Cache.MaxEntries,
		TTL:                cfg.Cache.TTL,
		CleanupProbability: cfg.Cache.CleanupProbability,
	}, logger)

	fetcher := upstream.NewHTTPFetcher(upstream.Config{
		BaseURL:      cfg.Upstream.BaseURL,
		FetchTimeout: cfg.Upstream.FetchTimeout,
		UserAgent:    cfg.Upstream.UserAgent,
	}, logger)

	notifier := discord.NewWebhookNotifier(discord.Config{
		WebhookURL: cfg.Discord.WebhookURL,
		Username:   cfg.Discord.Username,
	}, nil, logger)
	if cfg.Discord.WebhookURL == "" {
		logger.Warn("Discord webhook URL not configured; gameplay events will be dropped")
	}

	// Wire services with their dependencies
	cardService := services.NewCardService(logger)
	imageService := services.NewImageService(imageCache, fetcher, logger)
	analyticsService := services.NewAnalyticsService(notifier, logger)

	hcSlice := []ports.HealthChecker{health.NewUpstreamHealthChecker(cfg.Upstream.BaseURL, nil)}

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		TLSCertFile:  cfg.Server.TLSCertFile,
		TLSKeyFile:   cfg.Server.TLSKeyFile,
	}

	deps := httpserver.ServerDeps{
		CardService:      cardService,
		ImageService:     imageService,
		AnalyticsService: analyticsService,
		HealthCheckers:   hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
