// Package decision implements the swipe decision repository using PostgreSQL.
package decision

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/amoura-app/amoura-backend/internal/adapter/postgres"
	"github.com/amoura-app/amoura-backend/internal/domain"
)

// Repo provides decision persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new decision repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const decisionColumns = `id, decider_id, target_id, direction, created_at`

const insertDecisionSQL = `
INSERT INTO decisions (` + decisionColumns + `)
VALUES ($1, $2, $3, $4, $5)`

const getByUsersSQL = `
SELECT ` + decisionColumns + `
FROM decisions
WHERE decider_id = $1 AND target_id = $2`

const existsSQL = `
SELECT EXISTS(SELECT 1 FROM decisions WHERE decider_id = $1 AND target_id = $2)`

const likeExistsSQL = `
SELECT EXISTS(
    SELECT 1 FROM decisions
    WHERE decider_id = $1 AND target_id = $2 AND direction = 'LIKE'
)`

const decidedTargetIDsSQL = `
SELECT target_id FROM decisions WHERE decider_id = $1`

// Likers of a user who have not yet been decided on in return.
const pendingLikersSQL = `
SELECT d.decider_id
FROM decisions d
WHERE d.target_id = $1
  AND d.direction = 'LIKE'
  AND NOT EXISTS (
      SELECT 1 FROM decisions r
      WHERE r.decider_id = $1 AND r.target_id = d.decider_id
  )
ORDER BY d.created_at DESC`

const countLikesSinceSQL = `
SELECT count(*) FROM decisions
WHERE decider_id = $1 AND direction = 'LIKE' AND created_at >= $2`

// Create inserts a new decision.
// A repeat decision on the same target results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, d *domain.Decision) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertDecisionSQL,
		d.ID, d.DeciderID, d.TargetID, string(d.Direction), d.CreatedAt,
	)
	if err != nil {
		return mapError(err, "decision", d.ID)
	}

	return nil
}

// GetByUsers returns the decision decider made about target.
func (r *Repo) GetByUsers(ctx context.Context, deciderID, targetID uuid.UUID) (domain.Decision, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		d         domain.Decision
		direction string
	)
	err := querier.QueryRow(ctx, getByUsersSQL, deciderID, targetID).
		Scan(&d.ID, &d.DeciderID, &d.TargetID, &direction, &d.CreatedAt)
	if err != nil {
		return domain.Decision{}, mapError(err, "decision", uuid.Nil)
	}
	d.Direction = domain.Direction(direction)

	return d, nil
}

// Exists reports whether decider has already decided on target, in either
// direction.
func (r *Repo) Exists(ctx context.Context, deciderID, targetID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, deciderID, targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("decision exists: %w", err)
	}

	return exists, nil
}

// LikeExists reports whether decider has LIKEd target.
func (r *Repo) LikeExists(ctx context.Context, deciderID, targetID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, likeExistsSQL, deciderID, targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("like exists: %w", err)
	}

	return exists, nil
}

// DecidedTargetIDs returns every user decider has already liked or passed on.
func (r *Repo) DecidedTargetIDs(ctx context.Context, deciderID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, decidedTargetIDsSQL, deciderID)
	if err != nil {
		return nil, fmt.Errorf("decided target ids: %w", err)
	}
	defer rows.Close()

	ids, err := scanIDs(rows)
	if err != nil {
		return nil, fmt.Errorf("decided target ids: %w", err)
	}

	return ids, nil
}

// PendingLikers returns users who liked target and have not been decided on
// in return, most recent like first.
func (r *Repo) PendingLikers(ctx context.Context, targetID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, pendingLikersSQL, targetID)
	if err != nil {
		return nil, fmt.Errorf("pending likers: %w", err)
	}
	defer rows.Close()

	ids, err := scanIDs(rows)
	if err != nil {
		return nil, fmt.Errorf("pending likers: %w", err)
	}

	return ids, nil
}

// CountLikesSince returns how many LIKE decisions decider has recorded at or
// after since.
func (r *Repo) CountLikesSince(ctx context.Context, deciderID uuid.UUID, since time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countLikesSinceSQL, deciderID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count likes since: %w", err)
	}

	return count, nil
}

// Delete removes a decision by primary key.
// Returns domain.ErrNotFound if no such decision exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, `DELETE FROM decisions WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "decision", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("decision %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanIDs(rows pgx.Rows) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ids: %w", err)
	}
	return ids, nil
}
