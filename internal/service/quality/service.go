// Package quality computes match compatibility: six weighted sub-scores
// folded into a 0-100 aggregate with human-readable highlights. Scores
// are computed on demand and never stored.
package quality

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
	GetByUsers(ctx context.Context, deciderID, targetID uuid.UUID) (domain.Decision, error)
}

type matchRepo interface {
	GetByID(ctx context.Context, id string) (domain.Match, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the compatibility scoring logic.
type Service struct {
	users     userRepo
	decisions decisionRepo
	matches   matchRepo
	cfg       config.MatchingConfig
	log       *slog.Logger

	now func() time.Time
}

// NewService creates a new Quality service.
func NewService(
	log *slog.Logger,
	users userRepo,
	decisions decisionRepo,
	matches matchRepo,
	cfg config.MatchingConfig,
) *Service {
	return &Service{
		users:     users,
		decisions: decisions,
		matches:   matches,
		cfg:       cfg,
		log:       log.With("service", "quality"),
		now:       time.Now,
	}
}

// ComputeQualityInput holds the parameters for scoring a match.
type ComputeQualityInput struct {
	MatchID string
}

// Validate checks all fields and collects all errors.
func (i *ComputeQualityInput) Validate() error {
	var errs []domain.FieldError

	if i.MatchID == "" {
		errs = append(errs, domain.FieldError{Field: "match_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
