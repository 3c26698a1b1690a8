package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"marketplace/cmd"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfig(logger)

	root := buildCompositionRoot(config, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	// Application logging goes through slog; keep echo's own logger quiet.
	e.Logger.SetLevel(log.ERROR)
	e.Use(middleware.Recover())
	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("web server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("web server shutdown failed", "error", err)
	}
}

func buildCompositionRoot(config cmd.Config, logger *slog.Logger) cmd.CompositionRoot {
	if config.DBHost == "" {
		logger.Info("no database configured, using in-memory storage")
		return cmd.NewCompositionRoot(config, nil, logger)
	}

	db, err := cmd.OpenDatabase(config)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	return cmd.NewCompositionRoot(config, db, logger)
}

func getConfig(logger *slog.Logger) cmd.Config {
	// Missing .env is fine, the environment itself may carry the settings.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envOrDefault("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		MatchingPolicy: os.Getenv("MATCHING_POLICY"),
		OrderTimeout:   durationOrDefault(logger, "ORDER_TIMEOUT", cmd.DefaultOrderTimeout),
		SweepInterval:  durationOrDefault(logger, "SWEEP_INTERVAL", cmd.DefaultSweepInterval),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOrDefault(logger *slog.Logger, key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logger.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
