package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
)

// PendingLikers returns the active users who liked the authenticated user
// and have not been decided on yet, most recent like first.
func (s *Service) PendingLikers(ctx context.Context) ([]PendingLiker, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ids, err := s.decisions.PendingLikers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load pending likers: %w", err)
	}
	if len(ids) == 0 {
		return []PendingLiker{}, nil
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load liker profiles: %w", err)
	}

	byID := make(map[uuid.UUID]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	// Preserve the like-recency order of ids; drop inactive profiles.
	likers := make([]PendingLiker, 0, len(ids))
	for _, id := range ids {
		u, ok := byID[id]
		if !ok || !u.IsActive() {
			continue
		}
		likers = append(likers, PendingLiker{User: u})
	}

	s.log.InfoContext(ctx, "pending likers listed",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(likers)),
	)

	return likers, nil
}
