// Package undo implements the single-slot swipe undo: each new decision
// overwrites the slot, and within a short grace window the owner may take
// the decision (and the match it created) back.
package undo

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type undoStateRepo interface {
	Upsert(ctx context.Context, s *domain.UndoState) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (domain.UndoState, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type decisionRepo interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type matchRepo interface {
	Delete(ctx context.Context, id string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the undo business logic.
type Service struct {
	slots     undoStateRepo
	decisions decisionRepo
	matches   matchRepo
	tx        txManager
	log       *slog.Logger

	// window is how long a decision stays reversible.
	window time.Duration

	now func() time.Time
}

// NewService creates a new Undo service.
func NewService(
	log *slog.Logger,
	slots undoStateRepo,
	decisions decisionRepo,
	matches matchRepo,
	tx txManager,
	window time.Duration,
) *Service {
	return &Service{
		slots:     slots,
		decisions: decisions,
		matches:   matches,
		tx:        tx,
		log:       log.With("service", "undo"),
		window:    window,
		now:       time.Now,
	}
}
