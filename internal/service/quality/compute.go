package quality

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
	"github.com/amoura-app/amoura-backend/pkg/geoutil"
)

// neutralScore stands in for a sub-score when the underlying signal is
// unknown. Missing data should neither reward nor punish.
const neutralScore = 0.5

// ComputeQuality scores one of the caller's matches from the caller's
// perspective. Only the response-time factor depends on which side asks;
// everything else is symmetric.
func (s *Service) ComputeQuality(ctx context.Context, input ComputeQualityInput) (*domain.CompatibilityScore, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	match, err := s.matches.GetByID(ctx, input.MatchID)
	if err != nil {
		return nil, fmt.Errorf("load match: %w", err)
	}
	if !match.Involves(userID) {
		return nil, domain.ErrForbidden
	}
	otherID, err := match.OtherUser(userID)
	if err != nil {
		return nil, err
	}

	me, other, err := s.loadPair(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}

	timeBetween, err := s.timeBetweenLikes(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}

	score := s.score(match.ID, me, other, timeBetween)

	s.log.InfoContext(ctx, "compatibility computed",
		slog.String("match_id", match.ID),
		slog.String("user_id", userID.String()),
		slog.Int("total", score.Total),
	)

	return score, nil
}

func (s *Service) loadPair(ctx context.Context, a, b uuid.UUID) (*domain.User, *domain.User, error) {
	users, err := s.users.FindByIDs(ctx, []uuid.UUID{a, b})
	if err != nil {
		return nil, nil, fmt.Errorf("load participants: %w", err)
	}

	var me, other *domain.User
	for i := range users {
		switch users[i].ID {
		case a:
			me = &users[i]
		case b:
			other = &users[i]
		}
	}
	if me == nil || other == nil {
		return nil, nil, fmt.Errorf("match participant missing: %w", domain.ErrNotFound)
	}
	return me, other, nil
}

// timeBetweenLikes returns how long the caller's like sat unanswered, or
// how quickly the caller answered, depending on who liked first. Zero
// when either like is gone (undone or cleaned up).
func (s *Service) timeBetweenLikes(ctx context.Context, userID, otherID uuid.UUID) (time.Duration, error) {
	mine, err := s.decisions.GetByUsers(ctx, userID, otherID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("load decision: %w", err)
	}
	theirs, err := s.decisions.GetByUsers(ctx, otherID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("load decision: %w", err)
	}

	gap := theirs.CreatedAt.Sub(mine.CreatedAt)
	if gap < 0 {
		gap = -gap
	}
	return gap, nil
}

func (s *Service) score(matchID string, me, other *domain.User, timeBetween time.Duration) *domain.CompatibilityScore {
	distanceKm, distanceScore := s.distance(me, other)
	ageDiff := absInt(me.Age - other.Age)

	shared := me.Interests.Intersect(other.Interests)
	sharedList := make([]domain.Interest, 0, len(shared))
	for i := range shared {
		sharedList = append(sharedList, i)
	}
	sort.Slice(sharedList, func(i, j int) bool { return sharedList[i] < sharedList[j] })

	lifestyleScore, lifestyleMatches := lifestyle(me.Lifestyle, other.Lifestyle)

	paceScore := me.Pace.SyncWith(other.Pace)
	if paceScore < 0 {
		paceScore = neutralScore
	}

	score := &domain.CompatibilityScore{
		MatchID:           matchID,
		PerspectiveUserID: me.ID,
		OtherUserID:       other.ID,
		ComputedAt:        s.now().UTC(),

		DistanceScore:  distanceScore,
		AgeScore:       ageScore(me, other, ageDiff),
		InterestScore:  interestScore(me.Interests, other.Interests),
		LifestyleScore: lifestyleScore,
		PaceScore:      paceScore,
		ResponseScore:  responseScore(timeBetween),

		DistanceKm:       distanceKm,
		AgeDifference:    ageDiff,
		SharedInterests:  sharedList,
		LifestyleMatches: lifestyleMatches,
		TimeBetweenLikes: timeBetween,
		PaceSyncLevel:    paceSyncLevel(paceScore),
	}

	weighted := score.DistanceScore*s.cfg.DistanceWeight +
		score.AgeScore*s.cfg.AgeWeight +
		score.InterestScore*s.cfg.InterestWeight +
		score.LifestyleScore*s.cfg.LifestyleWeight +
		score.PaceScore*s.cfg.PaceWeight +
		score.ResponseScore*s.cfg.ResponseWeight
	score.Total = int(math.Round(weighted * 100))

	score.Highlights = highlights(score, me, other)

	return score
}

// distance returns the kilometers between the pair and the [0,1] score.
// Unknown locations are neutral rather than zero so an unset profile
// field cannot sink the aggregate.
func (s *Service) distance(me, other *domain.User) (float64, float64) {
	if !me.HasLocation() || !other.HasLocation() {
		return 0, neutralScore
	}
	km := geoutil.DistanceKm(*me.Lat, *me.Lon, *other.Lat, *other.Lon)

	maxKm := float64(me.MaxDistanceKm)
	switch {
	case km <= 1:
		return km, 1.0
	case maxKm <= 0 || km >= maxKm:
		return km, 0.0
	}
	return km, 1 - km/maxKm
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
