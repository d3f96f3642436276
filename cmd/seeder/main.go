// Command seeder populates the user store with demo dating profiles.
// It is intended to be run offline against development and staging
// environments, not as part of the main server.
//
// Flags:
//
//	--dry-run  list the profiles without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/amoura-app/amoura-backend/internal/adapter/postgres"
	"github.com/amoura-app/amoura-backend/internal/adapter/postgres/user"
	"github.com/amoura-app/amoura-backend/internal/app"
	"github.com/amoura-app/amoura-backend/internal/app/seeder"
	"github.com/amoura-app/amoura-backend/internal/config"
)

// Compile-time interface assertion.
var _ seeder.UserRepo = (*user.Repo)(nil)

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "list profiles without writing to DB")
	flag.Parse()

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

	pipeline := seeder.NewPipeline(logger, user.New(pool), *dryRunFlag)

	created, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("seeding failed",
			slog.String("error", err.Error()),
			slog.Int("created", created),
		)
		os.Exit(1)
	}

	logger.Info("seeding completed", slog.Int("created", created))
}
