package undo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// Record overwrites the user's undo slot with a fresh decision. The slot
// holds exactly one decision; recording forfeits any undo still pending
// for the previous one.
func (s *Service) Record(ctx context.Context, userID uuid.UUID, d *domain.Decision, matchID *string) error {
	now := s.now().UTC()

	slot := &domain.UndoState{
		UserID:     userID,
		DecisionID: d.ID,
		TargetID:   d.TargetID,
		Direction:  d.Direction,
		MatchID:    matchID,
		RecordedAt: now,
		ExpiresAt:  now.Add(s.window),
	}
	if err := s.slots.Upsert(ctx, slot); err != nil {
		return fmt.Errorf("upsert undo slot: %w", err)
	}
	return nil
}
