package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
)

// EndMatch moves one of the caller's matches to a terminal state. The
// match row stays behind as history; only participants may end a match.
func (s *Service) EndMatch(ctx context.Context, input EndMatchInput) (*domain.Match, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	state := input.State
	if state == "" {
		state = domain.MatchStateUnmatched
	}

	match, err := s.matches.GetByID(ctx, input.MatchID)
	if err != nil {
		return nil, fmt.Errorf("load match: %w", err)
	}
	if !match.Involves(userID) {
		return nil, domain.ErrForbidden
	}

	if err := match.TransitionTo(state, s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.matches.UpdateState(ctx, match.ID, match.State, match.EndedAt); err != nil {
		return nil, fmt.Errorf("update match state: %w", err)
	}

	s.log.InfoContext(ctx, "match ended",
		slog.String("user_id", userID.String()),
		slog.String("match_id", match.ID),
		slog.String("state", string(match.State)),
	)

	return &match, nil
}

// ListMatches returns all matches involving the authenticated user,
// newest first, terminal states included.
func (s *Service) ListMatches(ctx context.Context) ([]domain.Match, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	matches, err := s.matches.GetAllFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}
	return matches, nil
}
