package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tier thresholds for the 0-100 aggregate compatibility score.
const (
	TierExcellentThreshold = 90
	TierGreatThreshold     = 75
	TierGoodThreshold      = 60
	TierFairThreshold      = 40
)

// Tier labels.
const (
	TierExcellent = "Excellent Match"
	TierGreat     = "Great Match"
	TierGood      = "Good Match"
	TierFair      = "Fair Match"
	TierLow       = "Low Compatibility"
)

// CompatibilityScore is an immutable, on-demand value object describing
// how well two users fit. It is computed from one user's perspective:
// only the response-time factor can differ between the two perspectives.
// Never persisted; recomputed fresh on every request.
type CompatibilityScore struct {
	MatchID           string
	PerspectiveUserID uuid.UUID
	OtherUserID       uuid.UUID
	ComputedAt        time.Time

	// Sub-scores, each in [0.0, 1.0].
	DistanceScore  float64
	AgeScore       float64
	InterestScore  float64
	LifestyleScore float64
	PaceScore      float64
	ResponseScore  float64

	// Raw signals behind the sub-scores.
	DistanceKm       float64
	AgeDifference    int
	SharedInterests  []Interest
	LifestyleMatches []string
	TimeBetweenLikes time.Duration
	PaceSyncLevel    string

	// Total is the weighted aggregate in [0, 100].
	Total      int
	Highlights []string
}

// Validate checks the value-object invariants: every sub-score in
// [0.0, 1.0] and the aggregate in [0, 100].
func (q *CompatibilityScore) Validate() error {
	subScores := map[string]float64{
		"distance":  q.DistanceScore,
		"age":       q.AgeScore,
		"interest":  q.InterestScore,
		"lifestyle": q.LifestyleScore,
		"pace":      q.PaceScore,
		"response":  q.ResponseScore,
	}
	for name, score := range subScores {
		if score < 0.0 || score > 1.0 {
			return fmt.Errorf("%s score %v out of [0,1]: %w", name, score, ErrValidation)
		}
	}
	if q.Total < 0 || q.Total > 100 {
		return fmt.Errorf("total %d out of [0,100]: %w", q.Total, ErrValidation)
	}
	return nil
}

// Tier maps the aggregate to its qualitative label.
func (q *CompatibilityScore) Tier() string {
	switch {
	case q.Total >= TierExcellentThreshold:
		return TierExcellent
	case q.Total >= TierGreatThreshold:
		return TierGreat
	case q.Total >= TierGoodThreshold:
		return TierGood
	case q.Total >= TierFairThreshold:
		return TierFair
	}
	return TierLow
}

// StarRating maps the aggregate to 1-5 stars on the tier thresholds.
func (q *CompatibilityScore) StarRating() int {
	switch {
	case q.Total >= TierExcellentThreshold:
		return 5
	case q.Total >= TierGreatThreshold:
		return 4
	case q.Total >= TierGoodThreshold:
		return 3
	case q.Total >= TierFairThreshold:
		return 2
	}
	return 1
}
