package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"solosync/config"
	"solosync/config/postgre"
	"solosync/migrations"
	"solosync/pkg/log"
)

// main applies the embedded schema to postgres.dsn and exits.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Postgres.DSN == "" {
		logger.Error(ctx, "postgres.dsn (or POSTGRES_DSN) is required")
		os.Exit(1)
	}

	db, err := postgre.Connect(ctx, postgre.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		os.Exit(1)
	}
	defer postgre.Disconnect(context.Background(), db)

	applied, err := migrations.Apply(ctx, db)
	if err != nil {
		logger.Errorf(ctx, "Migration failed: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Applied %d migration(s): %v", len(applied), applied)
}
