package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/amoura-app/amoura-backend/internal/adapter/postgres"
	"github.com/amoura-app/amoura-backend/internal/adapter/postgres/decision"
	"github.com/amoura-app/amoura-backend/internal/adapter/postgres/match"
	"github.com/amoura-app/amoura-backend/internal/adapter/postgres/undostate"
	"github.com/amoura-app/amoura-backend/internal/adapter/postgres/user"
	"github.com/amoura-app/amoura-backend/internal/auth"
	"github.com/amoura-app/amoura-backend/internal/config"
	"github.com/amoura-app/amoura-backend/internal/service/discovery"
	"github.com/amoura-app/amoura-backend/internal/service/matching"
	"github.com/amoura-app/amoura-backend/internal/service/quality"
	"github.com/amoura-app/amoura-backend/internal/service/undo"
	"github.com/amoura-app/amoura-backend/internal/transport/middleware"
	"github.com/amoura-app/amoura-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires the services, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := user.New(pool)
	decisions := decision.New(pool)
	matches := match.New(pool)
	undoSlots := undostate.New(pool)
	txm := postgres.NewTxManager(pool)

	undoSvc := undo.NewService(logger, undoSlots, decisions, matches, txm, cfg.Matching.UndoWindow)
	matchingSvc := matching.NewService(logger, users, decisions, matches, undoSvc, txm, cfg.Matching)
	discoverySvc := discovery.NewService(logger, users, decisions, nil, cfg.Matching.CandidateLimit)
	qualitySvc := quality.NewService(logger, users, decisions, matches, cfg.Matching)

	verifier := auth.NewVerifier(cfg.Auth)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	mw := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(verifier),
	)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Discovery: rest.NewDiscoveryHandler(discoverySvc, logger),
		Matching:  rest.NewMatchingHandler(matchingSvc, logger),
		Quality:   rest.NewQualityHandler(qualitySvc, logger),
		Undo:      rest.NewUndoHandler(undoSvc, logger),
	}, mw)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
