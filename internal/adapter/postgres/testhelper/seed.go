package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// SeedUserOpt mutates the default profile before it is inserted.
type SeedUserOpt func(*domain.User)

// WithLocation sets the profile's coordinates.
func WithLocation(lat, lon float64) SeedUserOpt {
	return func(u *domain.User) {
		u.Lat = &lat
		u.Lon = &lon
	}
}

// WithState sets the profile's lifecycle state.
func WithState(state domain.UserState) SeedUserOpt {
	return func(u *domain.User) { u.State = state }
}

// WithAge sets the profile's age.
func WithAge(age int) SeedUserOpt {
	return func(u *domain.User) { u.Age = age }
}

// SeedUser creates an ACTIVE user with a mutually discoverable default
// profile: age 30, seeking ages 20..45 of any gender, 100 km radius, located
// in central Berlin. Opts adjust individual fields.
func SeedUser(t *testing.T, pool *pgxpool.Pool, opts ...SeedUserOpt) domain.User {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	lat, lon := 52.52, 13.405
	user := domain.User{
		ID:    uuid.New(),
		Name:  "Test User " + uuid.New().String()[:8],
		State: domain.UserStateActive,

		Gender: domain.GenderFemale,
		InterestedIn: map[domain.Gender]struct{}{
			domain.GenderFemale:    {},
			domain.GenderMale:      {},
			domain.GenderNonBinary: {},
			domain.GenderOther:     {},
		},

		Age:    30,
		MinAge: 20,
		MaxAge: 45,

		Lat: &lat,
		Lon: &lon,

		MaxDistanceKm: 100,

		Interests: domain.NewInterestSet(domain.InterestHiking, domain.InterestCooking),

		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, opt := range opts {
		opt(&user)
	}

	var interestedIn, interests []string
	for g := range user.InterestedIn {
		interestedIn = append(interestedIn, string(g))
	}
	for i := range user.Interests {
		interests = append(interests, string(i))
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, state, gender, interested_in,
		                    age, min_age, max_age, lat, lon, max_distance_km,
		                    interests, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		user.ID, user.Name, string(user.State), string(user.Gender), interestedIn,
		user.Age, user.MinAge, user.MaxAge, user.Lat, user.Lon, user.MaxDistanceKm,
		interests, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedDecision inserts a decision row and returns it.
func SeedDecision(t *testing.T, pool *pgxpool.Pool, deciderID, targetID uuid.UUID, direction domain.Direction) domain.Decision {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Decision{
		ID:        uuid.New(),
		DeciderID: deciderID,
		TargetID:  targetID,
		Direction: direction,
		CreatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO decisions (id, decider_id, target_id, direction, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		d.ID, d.DeciderID, d.TargetID, string(d.Direction), d.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDecision insert: %v", err)
	}

	return d
}

// SeedMatch inserts an ACTIVE match between two users and returns it.
func SeedMatch(t *testing.T, pool *pgxpool.Pool, a, b uuid.UUID) domain.Match {
	t.Helper()

	m, err := domain.NewMatch(a, b, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		t.Fatalf("testhelper: SeedMatch: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO matches (id, user_a, user_b, state, created_at, ended_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.UserA, m.UserB, string(m.State), m.CreatedAt, m.EndedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMatch insert: %v", err)
	}

	return *m
}
