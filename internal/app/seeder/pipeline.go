// Package seeder inserts a fixed set of demo dating profiles. It is run
// offline to bootstrap development and staging environments, never as
// part of the main server.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// UserRepo is the persistence surface the pipeline needs.
type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
}

// Pipeline seeds demo profiles into the user store.
type Pipeline struct {
	repo   UserRepo
	log    *slog.Logger
	dryRun bool

	now func() time.Time
}

// NewPipeline creates a seeding pipeline. With dryRun set, profiles are
// listed but not written.
func NewPipeline(log *slog.Logger, repo UserRepo, dryRun bool) *Pipeline {
	return &Pipeline{
		repo:   repo,
		log:    log.With("component", "seeder"),
		dryRun: dryRun,
		now:    time.Now,
	}
}

// Run inserts the demo profiles. Profiles that already exist are
// skipped, so the pipeline is safe to re-run. Returns the number of
// profiles actually created.
func (p *Pipeline) Run(ctx context.Context) (int, error) {
	profiles := Profiles(p.now().UTC())

	created := 0
	for i := range profiles {
		u := &profiles[i]

		if p.dryRun {
			p.log.Info("would create profile",
				slog.String("id", u.ID.String()),
				slog.String("name", u.Name),
			)
			continue
		}

		err := p.repo.Create(ctx, u)
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			p.log.Info("profile already exists, skipping",
				slog.String("id", u.ID.String()),
				slog.String("name", u.Name),
			)
		case err != nil:
			return created, fmt.Errorf("create profile %s: %w", u.Name, err)
		default:
			created++
			p.log.Info("created profile",
				slog.String("id", u.ID.String()),
				slog.String("name", u.Name),
			)
		}
	}

	return created, nil
}
