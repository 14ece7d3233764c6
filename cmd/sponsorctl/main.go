// Package main implements sponsorctl, the operator CLI for the sponsor tracker.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/sponsor-tracker/backend/config"
	"github.com/sponsor-tracker/backend/internal/integration/adapters"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg := config.Load()
	rootCmd := newRootCmd(cfg, adapters.NewSystemClock(cfg.Server.Location()))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
