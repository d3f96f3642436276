// Command cleanup physically removes expired undo slots. Slots expire
// seconds after they are written, so this is a hygiene job; it is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/amoura-app/amoura-backend/internal/adapter/postgres"
	"github.com/amoura-app/amoura-backend/internal/adapter/postgres/undostate"
	"github.com/amoura-app/amoura-backend/internal/app"
	"github.com/amoura-app/amoura-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	slots := undostate.New(pool)

	now := time.Now().UTC()

	deleted, err := slots.DeleteExpired(ctx, now)
	if err != nil {
		logger.Error("purge expired undo slots failed",
			slog.String("error", err.Error()),
			slog.Time("now", now),
		)
		os.Exit(1)
	}

	logger.Info("purge expired undo slots completed",
		slog.Int64("deleted", deleted),
		slog.Time("now", now),
	)
}
