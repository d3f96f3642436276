package seeder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type userRepoMock struct {
	createFunc func(ctx context.Context, u *domain.User) error
	created    []*domain.User
}

func (m *userRepoMock) Create(ctx context.Context, u *domain.User) error {
	m.created = append(m.created, u)
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return nil
}

func TestProfiles_AreValid(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	profiles := Profiles(now)

	if len(profiles) == 0 {
		t.Fatal("expected at least one profile")
	}

	seen := map[string]bool{}
	for _, u := range profiles {
		if seen[u.ID.String()] {
			t.Errorf("duplicate profile ID %s", u.ID)
		}
		seen[u.ID.String()] = true

		if u.State != domain.UserStateActive {
			t.Errorf("profile %s: expected ACTIVE, got %s", u.Name, u.State)
		}
		if !u.Gender.IsValid() {
			t.Errorf("profile %s: invalid gender", u.Name)
		}
		if len(u.InterestedIn) == 0 {
			t.Errorf("profile %s: no gender preference", u.Name)
		}
		if u.Age <= 0 || u.MinAge > u.MaxAge {
			t.Errorf("profile %s: inconsistent ages", u.Name)
		}
		if u.CreatedAt != now {
			t.Errorf("profile %s: expected CreatedAt %v, got %v", u.Name, now, u.CreatedAt)
		}
	}
}

func TestProfiles_Deterministic(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	first := Profiles(now)
	second := Profiles(now)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("profile %d: IDs differ between runs", i)
		}
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{}
	p := NewPipeline(testLogger(), repo, false)

	created, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := len(Profiles(time.Now()))
	if created != want {
		t.Errorf("expected %d created, got %d", want, created)
	}
	if len(repo.created) != want {
		t.Errorf("expected %d Create calls, got %d", want, len(repo.created))
	}
}

func TestPipeline_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{}
	p := NewPipeline(testLogger(), repo, true)

	created, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if created != 0 {
		t.Errorf("expected 0 created, got %d", created)
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no Create calls, got %d", len(repo.created))
	}
}

func TestPipeline_SkipsExisting(t *testing.T) {
	t.Parallel()

	calls := 0
	repo := &userRepoMock{
		createFunc: func(context.Context, *domain.User) error {
			calls++
			if calls == 1 {
				return domain.ErrAlreadyExists
			}
			return nil
		},
	}
	p := NewPipeline(testLogger(), repo, false)

	created, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := len(Profiles(time.Now())) - 1
	if created != want {
		t.Errorf("expected %d created, got %d", want, created)
	}
}

func TestPipeline_StopsOnHardError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection lost")
	repo := &userRepoMock{
		createFunc: func(context.Context, *domain.User) error { return boom },
	}
	p := NewPipeline(testLogger(), repo, false)

	_, err := p.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if len(repo.created) != 1 {
		t.Errorf("expected pipeline to stop after first failure, got %d calls", len(repo.created))
	}
}
