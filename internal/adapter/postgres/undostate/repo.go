// Package undostate implements the single-slot undo repository using
// PostgreSQL. Each user has at most one row; recording a new undoable
// decision overwrites the previous slot.
package undostate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/amoura-app/amoura-backend/internal/adapter/postgres"
	"github.com/amoura-app/amoura-backend/internal/domain"
)

// Repo provides undo slot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new undo state repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const undoColumns = `user_id, decision_id, target_id, direction, match_id, recorded_at, expires_at`

const upsertSQL = `
INSERT INTO undo_states (` + undoColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE SET
    decision_id = EXCLUDED.decision_id,
    target_id   = EXCLUDED.target_id,
    direction   = EXCLUDED.direction,
    match_id    = EXCLUDED.match_id,
    recorded_at = EXCLUDED.recorded_at,
    expires_at  = EXCLUDED.expires_at`

const getByUserIDSQL = `SELECT ` + undoColumns + ` FROM undo_states WHERE user_id = $1`

// Upsert writes the user's undo slot, replacing any previous one.
func (r *Repo) Upsert(ctx context.Context, s *domain.UndoState) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, upsertSQL,
		s.UserID, s.DecisionID, s.TargetID, string(s.Direction),
		s.MatchID, s.RecordedAt, s.ExpiresAt,
	)
	if err != nil {
		return mapError(err, "undo state", s.UserID)
	}

	return nil
}

// GetByUserID returns the user's undo slot.
// Returns domain.ErrNotFound if the slot is empty.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.UndoState, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		s         domain.UndoState
		direction string
	)
	err := querier.QueryRow(ctx, getByUserIDSQL, userID).Scan(
		&s.UserID, &s.DecisionID, &s.TargetID, &direction,
		&s.MatchID, &s.RecordedAt, &s.ExpiresAt,
	)
	if err != nil {
		return domain.UndoState{}, mapError(err, "undo state", userID)
	}
	s.Direction = domain.Direction(direction)

	return s, nil
}

// Delete clears the user's undo slot. Clearing an already-empty slot is not
// an error.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, `DELETE FROM undo_states WHERE user_id = $1`, userID); err != nil {
		return mapError(err, "undo state", userID)
	}

	return nil
}

// DeleteExpired removes every slot whose window closed at or before now and
// returns how many were removed.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, `DELETE FROM undo_states WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired undo states: %w", err)
	}

	return tag.RowsAffected(), nil
}
