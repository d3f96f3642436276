package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
)

// RecordDecision records a like or pass by the authenticated user. A LIKE
// that completes a mutual pair creates a match. The decision and the undo
// slot are written in one transaction, so a crash can never leave an undo
// slot pointing at a decision that was not stored.
func (s *Service) RecordDecision(ctx context.Context, input RecordDecisionInput) (*SwipeOutcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()

	decision, err := domain.NewDecision(userID, input.TargetID, input.Direction, now)
	if err != nil {
		return nil, err
	}

	exists, err := s.decisions.Exists(ctx, userID, input.TargetID)
	if err != nil {
		return nil, fmt.Errorf("check existing decision: %w", err)
	}
	if exists {
		return &SwipeOutcome{AlreadyDecided: true}, nil
	}

	if decision.IsLike() && s.cfg.DailyLikeLimit > 0 {
		count, err := s.decisions.CountLikesSince(ctx, userID, startOfDayUTC(now))
		if err != nil {
			return nil, fmt.Errorf("count likes today: %w", err)
		}
		if count >= s.cfg.DailyLikeLimit {
			s.log.InfoContext(ctx, "daily like limit reached",
				slog.String("user_id", userID.String()),
				slog.Int("limit", s.cfg.DailyLikeLimit),
			)
			return &SwipeOutcome{LimitReached: true}, nil
		}
	}

	outcome := &SwipeOutcome{Decision: decision}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.decisions.Create(ctx, decision); err != nil {
			return fmt.Errorf("create decision: %w", err)
		}

		if decision.IsLike() {
			match, err := s.resolveMatch(ctx, userID, input, now)
			if err != nil {
				return err
			}
			outcome.Match = match
		}

		var matchID *string
		if outcome.Match != nil {
			matchID = &outcome.Match.ID
		}
		if err := s.undo.Record(ctx, userID, decision, matchID); err != nil {
			return fmt.Errorf("record undo slot: %w", err)
		}
		return nil
	})
	if err != nil {
		// A concurrent identical swipe slipped past the Exists check and
		// hit the unique pair constraint. Same answer as the fast path.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return &SwipeOutcome{AlreadyDecided: true}, nil
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "decision recorded",
		slog.String("user_id", userID.String()),
		slog.String("target_id", input.TargetID.String()),
		slog.String("direction", string(input.Direction)),
		slog.Bool("matched", outcome.Matched()),
	)

	return outcome, nil
}

// resolveMatch creates the match for a completed mutual like. Two users
// liking each other at the same instant both try the insert; the
// deterministic match ID turns the second insert into a conflict, which
// resolves to the row already there.
func (s *Service) resolveMatch(ctx context.Context, userID uuid.UUID, input RecordDecisionInput, now time.Time) (*domain.Match, error) {
	mutual, err := s.decisions.LikeExists(ctx, input.TargetID, userID)
	if err != nil {
		return nil, fmt.Errorf("check mutual like: %w", err)
	}
	if !mutual {
		return nil, nil
	}

	match, err := domain.NewMatch(userID, input.TargetID, now)
	if err != nil {
		return nil, err
	}

	if err := s.matches.Create(ctx, match); err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("create match: %w", err)
		}
		existing, err := s.matches.GetByID(ctx, match.ID)
		if err != nil {
			return nil, fmt.Errorf("load existing match: %w", err)
		}
		if existing.State != domain.MatchStateActive {
			// The pair matched before and the match was ended. Ended
			// matches are history, not something a new like revives.
			return nil, nil
		}
		match = &existing
	}

	return match, nil
}

// startOfDayUTC truncates t to UTC midnight. The like limit is per UTC
// calendar day.
func startOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
