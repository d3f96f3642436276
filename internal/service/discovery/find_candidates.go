package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
	"github.com/amoura-app/amoura-backend/pkg/geoutil"
)

// FindCandidates returns the discovery feed for the authenticated user:
// active profiles the user has not decided on yet, mutually compatible on
// gender and age, within the user's distance preference, clearing the
// user's dealbreakers, sorted closest first.
func (s *Service) FindCandidates(ctx context.Context, input FindCandidatesInput) ([]Candidate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 20
	}

	seeker, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load seeker: %w", err)
	}

	excluded, err := s.decisions.DecidedTargetIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load decided targets: %w", err)
	}

	if s.blocks != nil {
		blocked, err := s.blocks.BlockedIDs(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load blocked ids: %w", err)
		}
		excluded = append(excluded, blocked...)
	}

	pool, err := s.users.FindActiveCandidates(ctx, seeker.FilterFor(excluded, s.candidateLimit))
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}

	feed := make([]Candidate, 0, min(limit, len(pool)))
	for i := range pool {
		c := &pool[i]
		if !matches(&seeker, c) {
			continue
		}
		feed = append(feed, Candidate{User: pool[i], DistanceKm: distanceBetween(&seeker, c)})
	}

	// Closest first; pairs without a distance sort last. Equal distances
	// break on candidate ID so repeat calls return a stable order.
	sort.Slice(feed, func(i, j int) bool {
		di, dj := sortKey(feed[i].DistanceKm), sortKey(feed[j].DistanceKm)
		if di != dj {
			return di < dj
		}
		return feed[i].User.ID.String() < feed[j].User.ID.String()
	})

	if len(feed) > limit {
		feed = feed[:limit]
	}

	s.log.InfoContext(ctx, "discovery feed generated",
		slog.String("user_id", userID.String()),
		slog.Int("pool_size", len(pool)),
		slog.Int("feed_size", len(feed)),
	)

	return feed, nil
}

// matches applies the in-memory filter chain on top of the storage
// pre-filter. The storage layer already narrows by state, the seeker's
// gender interest and both age ranges; the checks repeat here so the
// result does not depend on how coarse the pre-filter is.
func matches(seeker, candidate *domain.User) bool {
	if candidate.ID == seeker.ID {
		return false
	}
	if !candidate.IsActive() {
		return false
	}

	// Gender interest must hold both ways. An empty interest set on
	// either side fails.
	if !seeker.InterestedInGender(candidate.Gender) {
		return false
	}
	if !candidate.InterestedInGender(seeker.Gender) {
		return false
	}

	// Age must fit both ranges. Unset age fails.
	if seeker.Age == 0 || candidate.Age == 0 {
		return false
	}
	if !seeker.AgeInRange(candidate.Age) || !candidate.AgeInRange(seeker.Age) {
		return false
	}

	// Distance check applies only when both sides have a location.
	if seeker.HasLocation() && candidate.HasLocation() {
		d := geoutil.DistanceKm(*seeker.Lat, *seeker.Lon, *candidate.Lat, *candidate.Lon)
		if d > float64(seeker.MaxDistanceKm) {
			return false
		}
	}

	return passesDealbreakers(seeker, candidate)
}

func distanceBetween(a, b *domain.User) *float64 {
	if !a.HasLocation() || !b.HasLocation() {
		return nil
	}
	d := geoutil.DistanceKm(*a.Lat, *a.Lon, *b.Lat, *b.Lon)
	return &d
}

func sortKey(d *float64) float64 {
	if d == nil {
		return math.MaxFloat64
	}
	return *d
}
