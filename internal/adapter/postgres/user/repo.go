// Package user implements the user profile repository using PostgreSQL.
// Static queries are raw SQL constants; the candidate pre-filter is built
// dynamically with squirrel.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/amoura-app/amoura-backend/internal/adapter/postgres"
	"github.com/amoura-app/amoura-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, name, state, gender, interested_in,
       age, min_age, max_age,
       lat, lon, max_distance_km, height_cm,
       interests,
       smoking, drinking, kids_stance, relationship_goal, education,
       pace_messaging, pace_first_date, pace_comm_style, pace_depth,
       dealbreakers,
       created_at, updated_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const findByIDsSQL = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1::uuid[])`

const insertUserSQL = `
INSERT INTO users (` + userColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.User{}, mapError(err, "user", id)
	}

	return u, nil
}

// FindByIDs returns the users whose IDs are in ids. Missing IDs are
// silently omitted; the result order is unspecified.
func (r *Repo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, findByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("find users by ids: %w", err)
	}
	defer rows.Close()

	users, err := scanUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("find users by ids: %w", err)
	}

	return users, nil
}

// FindActiveCandidates returns ACTIVE users matching the SQL-expressible part
// of the discovery filter: not the seeker, not already decided on, mutual
// gender interest, and mutual age-range fit.
func (r *Repo) FindActiveCandidates(ctx context.Context, f domain.CandidateFilter) ([]domain.User, error) {
	b := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"state": string(domain.UserStateActive)}).
		Where(squirrel.NotEq{"id": f.SeekerID}).
		Where("gender = ANY(?)", genderStrings(f.Genders)).
		Where(squirrel.GtOrEq{"age": f.MinAge}).
		Where(squirrel.LtOrEq{"age": f.MaxAge}).
		Where("? = ANY(interested_in)", string(f.SeekerGender)).
		Where("? BETWEEN min_age AND max_age", f.SeekerAge)

	if len(f.ExcludedIDs) > 0 {
		b = b.Where("NOT (id = ANY(?::uuid[]))", f.ExcludedIDs)
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidate query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find active candidates: %w", err)
	}
	defer rows.Close()

	users, err := scanUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("find active candidates: %w", err)
	}

	return users, nil
}

// Create inserts a new user profile.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	dealbreakers, err := encodeDealbreakers(u.Dealbreakers)
	if err != nil {
		return fmt.Errorf("user %s: %w", u.ID, err)
	}

	_, err = querier.Exec(ctx, insertUserSQL,
		u.ID, u.Name, string(u.State), string(u.Gender), setToSlice(u.InterestedIn),
		u.Age, u.MinAge, u.MaxAge,
		u.Lat, u.Lon, u.MaxDistanceKm, u.HeightCm,
		setToSlice(u.Interests),
		enumOrNil(u.Lifestyle.Smoking), enumOrNil(u.Lifestyle.Drinking),
		enumOrNil(u.Lifestyle.KidsStance), enumOrNil(u.Lifestyle.RelationshipGoal),
		enumOrNil(u.Lifestyle.Education),
		enumOrNil(u.Pace.MessagingFrequency), enumOrNil(u.Pace.TimeToFirstDate),
		enumOrNil(u.Pace.CommunicationStyle), enumOrNil(u.Pace.DepthPreference),
		dealbreakers,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "user", u.ID)
	}

	return nil
}

// UpdateState transitions a user's lifecycle state.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) UpdateState(ctx context.Context, id uuid.UUID, state domain.UserState) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx,
		`UPDATE users SET state = $2, updated_at = $3 WHERE id = $1`,
		id, string(state), time.Now().UTC(),
	)
	if err != nil {
		return mapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func genderStrings(gs []domain.Gender) []string {
	out := make([]string, 0, len(gs))
	for _, g := range gs {
		out = append(out, string(g))
	}
	return out
}
