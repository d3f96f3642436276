// Package discovery implements candidate discovery: finding profiles a user
// can swipe on, filtered by mutual preferences, distance and dealbreakers,
// sorted closest first.
package discovery

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	FindActiveCandidates(ctx context.Context, f domain.CandidateFilter) ([]domain.User, error)
}

type decisionRepo interface {
	DecidedTargetIDs(ctx context.Context, deciderID uuid.UUID) ([]uuid.UUID, error)
}

// blockLister supplies IDs a user must never see. Trust and safety lives
// in an external collaborator; a nil lister means no block exclusions.
type blockLister interface {
	BlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the discovery business logic.
type Service struct {
	users     userRepo
	decisions decisionRepo
	blocks    blockLister
	log       *slog.Logger

	// Upper bound on the pre-filtered pool fetched from storage.
	candidateLimit int
}

// NewService creates a new Discovery service. blocks may be nil.
func NewService(log *slog.Logger, users userRepo, decisions decisionRepo, blocks blockLister, candidateLimit int) *Service {
	return &Service{
		users:          users,
		decisions:      decisions,
		blocks:         blocks,
		log:            log.With("service", "discovery"),
		candidateLimit: candidateLimit,
	}
}
