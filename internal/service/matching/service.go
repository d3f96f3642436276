// Package matching implements decision recording and match lifecycle:
// likes and passes, mutual-like match creation, the daily like limit,
// pending likers and ending matches.
package matching

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/config"
	"github.com/amoura-app/amoura-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type decisionRepo interface {
	Create(ctx context.Context, d *domain.Decision) error
	Exists(ctx context.Context, deciderID, targetID uuid.UUID) (bool, error)
	LikeExists(ctx context.Context, deciderID, targetID uuid.UUID) (bool, error)
	PendingLikers(ctx context.Context, targetID uuid.UUID) ([]uuid.UUID, error)
	CountLikesSince(ctx context.Context, deciderID uuid.UUID, since time.Time) (int, error)
}

type matchRepo interface {
	Create(ctx context.Context, m *domain.Match) error
	GetByID(ctx context.Context, id string) (domain.Match, error)
	GetAllFor(ctx context.Context, userID uuid.UUID) ([]domain.Match, error)
	UpdateState(ctx context.Context, id string, state domain.MatchState, endedAt *time.Time) error
}

type undoRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, d *domain.Decision, matchID *string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the matching business logic.
type Service struct {
	users     userRepo
	decisions decisionRepo
	matches   matchRepo
	undo      undoRecorder
	tx        txManager
	cfg       config.MatchingConfig
	log       *slog.Logger

	now func() time.Time
}

// NewService creates a new Matching service.
func NewService(
	log *slog.Logger,
	users userRepo,
	decisions decisionRepo,
	matches matchRepo,
	undo undoRecorder,
	tx txManager,
	cfg config.MatchingConfig,
) *Service {
	return &Service{
		users:     users,
		decisions: decisions,
		matches:   matches,
		undo:      undo,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "matching"),
		now:       time.Now,
	}
}
