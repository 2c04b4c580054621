package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/playtime/internal/api"
	"github.com/mcoot/playtime/internal/config"
	"github.com/mcoot/playtime/internal/factory"
	"github.com/mcoot/playtime/internal/monitoring"
)

const appName = "playtime"

func main() {
	// Load configuration from .env and the environment
	conf, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	level, _ := conf.SlogLevel()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Error reporting is a no-op without a DSN
	enabled, err := monitoring.InitSentry(appName, monitoring.SentryConfig{
		DSN:         conf.SentryDSN,
		Environment: conf.SentryEnvironment,
		Release:     conf.Release,
	})
	if err != nil {
		logger.Warn("error reporting disabled", slog.String("error", err.Error()))
	}
	defer monitoring.FlushSentry()
	logger.Info("error reporting", slog.Bool("enabled", enabled))

	var metrics *monitoring.Metrics
	if conf.MetricsEnabled {
		metrics = monitoring.NewMetrics()
	}

	// Create application factory
	app, err := factory.New(factory.Config{
		Recaptcha: conf.RecaptchaConfig(),
		Riot:      conf.RiotConfig(),
		Logger:    logger,
		Metrics:   metrics,
	})
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		PlaytimeService:    app.PlaytimeService,
		RecaptchaSiteKey:   conf.RecaptchaSiteKey,
		CORSAllowedOrigins: conf.CORSAllowedOrigins,
		Metrics:            app.Metrics,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = conf.Host
	serverConfig.Port = conf.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			monitoring.FlushSentry()
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			monitoring.FlushSentry()
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
