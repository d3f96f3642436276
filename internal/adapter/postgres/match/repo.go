// Package match implements the match repository using PostgreSQL.
// The primary key is the deterministic pair identifier, so duplicate match
// creation surfaces as a unique violation.
package match

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

// Repo provides match persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new match repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const matchColumns = `id, user_a, user_b, state, created_at, ended_at`

const insertMatchSQL = `
INSERT INTO matches (` + matchColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)`

const getByIDSQL = `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

const getAllForSQL = `
SELECT ` + matchColumns + `
FROM matches
WHERE user_a = $1 OR user_b = $1
ORDER BY created_at DESC`

const updateStateSQL = `
UPDATE matches SET state = $2, ended_at = $3 WHERE id = $1`

// Create inserts a new match.
// A match between the same pair results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, m *domain.Match) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertMatchSQL,
		m.ID, m.UserA, m.UserB, string(m.State), m.CreatedAt, m.EndedAt,
	)
	if err != nil {
		return mapError(err, "match", m.ID)
	}

	return nil
}

// GetByID returns a match by its pair identifier.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Match, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMatch(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Match{}, mapError(err, "match", id)
	}

	return m, nil
}

// GetAllFor returns every match the user participates in, newest first.
func (r *Repo) GetAllFor(ctx context.Context, userID uuid.UUID) ([]domain.Match, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getAllForSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("get matches for user: %w", err)
	}
	defer rows.Close()

	matches := []domain.Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate match rows: %w", err)
	}

	return matches, nil
}

// UpdateState persists a state transition.
// Returns domain.ErrNotFound if the match does not exist.
func (r *Repo) UpdateState(ctx context.Context, id string, state domain.MatchState, endedAt *time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateStateSQL, id, string(state), endedAt)
	if err != nil {
		return mapError(err, "match", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a match by its pair identifier.
// Returns domain.ErrNotFound if no such match exists.
func (r *Repo) Delete(ctx context.Context, id string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "match", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanMatch(row pgx.Row) (domain.Match, error) {
	var (
		m     domain.Match
		state string
	)
	err := row.Scan(&m.ID, &m.UserA, &m.UserB, &state, &m.CreatedAt, &m.EndedAt)
	if err != nil {
		return domain.Match{}, err
	}
	m.State = domain.MatchState(state)

	return m, nil
}
