// Package main is the entry point for the Sponsor Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sponsor-tracker/backend/config"
	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/infra/db"
	"github.com/sponsor-tracker/backend/internal/infra/dependency"
	"github.com/sponsor-tracker/backend/internal/infra/server/router"
	"github.com/sponsor-tracker/backend/internal/integration/cache"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(os.Getenv("LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Sponsor Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"time_zone", cfg.Server.Location().String(),
	)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	var r *router.Router

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, serving calendar routes only",
			"error", err,
		)
		r = dependency.NewCalendarOnlyRouter(cfg, nil)
	} else {
		if err := database.Migrate(); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		summaryCache, closeCache := connectCache(cfg)
		defer closeCache()

		injector, err := dependency.NewInjector(cfg, database.DB(), dependency.Options{Cache: summaryCache})
		if err != nil {
			slog.Error("Failed to wire dependencies", "error", err)
			os.Exit(1)
		}
		r = injector.Router

		if cfg.Email.WorkerEnabled {
			go injector.EmailWorker.Start(rootCtx)
		}

		slog.Info("Sponsorship systems initialized successfully")
	}

	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// connectCache opens the redis summary cache. A nil cache disables caching.
func connectCache(cfg *config.Config) (adapter.SummaryCache, func()) {
	noop := func() {}
	if !cfg.Redis.Enabled {
		slog.Info("Summary cache disabled")
		return nil, noop
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("Invalid REDIS_URL, summary cache disabled", "error", err)
		return nil, noop
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable at startup, summaries will be computed on demand", "error", err)
	} else {
		slog.Info("Redis connection established", "addr", opts.Addr)
	}

	return cache.NewRedisSummaryCache(client), func() {
		if err := client.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
