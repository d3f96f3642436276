package undo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
)

// GetStatus reports whether the authenticated user can undo right now and
// how many seconds remain. An expired slot is removed on sight.
func (s *Service) GetStatus(ctx context.Context) (*Status, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	slot, err := s.slots.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &Status{}, nil
		}
		return nil, fmt.Errorf("load undo slot: %w", err)
	}

	now := s.now().UTC()
	if slot.IsExpired(now) {
		if err := s.slots.Delete(ctx, userID); err != nil {
			return nil, fmt.Errorf("drop expired undo slot: %w", err)
		}
		return &Status{}, nil
	}

	return &Status{
		CanUndo:          true,
		SecondsRemaining: slot.SecondsRemaining(now),
		TargetID:         slot.TargetID,
		Direction:        slot.Direction,
	}, nil
}

// Undo takes back the authenticated user's most recent decision: the
// decision row is deleted, the match it created (if any) is deleted, and
// the slot is cleared, all in one transaction. A slot survives a failed
// attempt so the user can retry; a consumed slot is gone, so an undo
// cannot itself be undone.
func (s *Service) Undo(ctx context.Context) (*Outcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	slot, err := s.slots.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &Outcome{Reason: ReasonNothingToUndo}, nil
		}
		return nil, fmt.Errorf("load undo slot: %w", err)
	}

	if slot.IsExpired(s.now().UTC()) {
		if err := s.slots.Delete(ctx, userID); err != nil {
			return nil, fmt.Errorf("drop expired undo slot: %w", err)
		}
		return &Outcome{Reason: ReasonWindowExpired}, nil
	}

	matchDeleted := false
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// The decision may already be gone if the other side unmatched
		// and cascades cleaned up; tolerate that.
		if err := s.decisions.Delete(ctx, slot.DecisionID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("delete decision: %w", err)
		}

		if slot.MatchID != nil {
			err := s.matches.Delete(ctx, *slot.MatchID)
			switch {
			case err == nil:
				matchDeleted = true
			case errors.Is(err, domain.ErrNotFound):
			default:
				return fmt.Errorf("delete match: %w", err)
			}
		}

		if err := s.slots.Delete(ctx, userID); err != nil {
			return fmt.Errorf("clear undo slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "decision undone",
		slog.String("user_id", userID.String()),
		slog.String("target_id", slot.TargetID.String()),
		slog.String("direction", string(slot.Direction)),
		slog.Bool("match_deleted", matchDeleted),
	)

	return &Outcome{
		Undone:       true,
		TargetID:     slot.TargetID,
		Direction:    slot.Direction,
		MatchDeleted: matchDeleted,
	}, nil
}

// CleanupExpired removes every expired undo slot and returns how many
// rows went away. Meant for a periodic job, not a request path.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := s.slots.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired undo slots: %w", err)
	}
	if removed > 0 {
		s.log.InfoContext(ctx, "expired undo slots removed", slog.Int64("count", removed))
	}
	return removed, nil
}
