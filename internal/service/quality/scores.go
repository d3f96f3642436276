package quality

import (
	"time"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// ageScore rewards small age gaps. A gap of two years or less is a full
// score; beyond that the score decays against the average of the two
// users' own acceptable age ranges, so a couple who both cast wide nets
// is penalized less for the same gap.
func ageScore(me, other *domain.User, ageDiff int) float64 {
	if ageDiff <= 2 {
		return 1.0
	}
	avgRange := ((me.MaxAge - me.MinAge) + (other.MaxAge - other.MinAge)) / 2
	if avgRange == 0 {
		return 1.0
	}
	score := 1 - float64(ageDiff)/float64(avgRange)
	if score < 0 {
		return 0
	}
	return score
}

// interestScore is the overlap relative to the smaller list, so a niche
// profile is not punished for meeting a broad one. Two blank lists are
// neutral; one blank list scores low but not zero, since nothing is
// actually contradicted.
func interestScore(mine, theirs domain.InterestSet) float64 {
	if len(mine) == 0 && len(theirs) == 0 {
		return neutralScore
	}
	if len(mine) == 0 || len(theirs) == 0 {
		return 0.3
	}
	smaller := len(mine)
	if len(theirs) < smaller {
		smaller = len(theirs)
	}
	return float64(len(mine.Intersect(theirs))) / float64(smaller)
}

// lifestyle scores agreement across the smoking, drinking, kids and
// relationship-goal axes, counting only axes both sides declared, and
// collects a display string per agreeing axis. No shared declared axes
// is neutral. Education is a dealbreaker axis, not a similarity signal.
func lifestyle(mine, theirs domain.Lifestyle) (float64, []string) {
	declared := 0
	matched := 0
	var matches []string

	if mine.Smoking != "" && theirs.Smoking != "" {
		declared++
		if mine.Smoking == theirs.Smoking {
			matched++
			matches = append(matches, smokingMatch(mine.Smoking))
		}
	}

	if mine.Drinking != "" && theirs.Drinking != "" {
		declared++
		if mine.Drinking == theirs.Drinking {
			matched++
			matches = append(matches, drinkingMatch(mine.Drinking))
		}
	}

	if mine.KidsStance != "" && theirs.KidsStance != "" {
		declared++
		if mine.KidsStance.CompatibleWith(theirs.KidsStance) {
			matched++
			if mine.KidsStance == theirs.KidsStance {
				matches = append(matches, "Same stance on kids")
			} else {
				matches = append(matches, "Compatible on kids")
			}
		}
	}

	if mine.RelationshipGoal != "" && theirs.RelationshipGoal != "" {
		declared++
		if mine.RelationshipGoal == theirs.RelationshipGoal {
			matched++
			matches = append(matches, "Both looking for "+goalPhrase(mine.RelationshipGoal))
		}
	}

	if declared == 0 {
		return neutralScore, nil
	}
	return float64(matched) / float64(declared), matches
}

func smokingMatch(s domain.Smoking) string {
	switch s {
	case domain.SmokingNever:
		return "Both non-smokers"
	case domain.SmokingSometimes:
		return "Both occasional smokers"
	}
	return "Both smokers"
}

func drinkingMatch(d domain.Drinking) string {
	switch d {
	case domain.DrinkingNever:
		return "Neither drinks"
	case domain.DrinkingSocially:
		return "Both social drinkers"
	}
	return "Both regular drinkers"
}

func goalPhrase(g domain.RelationshipGoal) string {
	switch g {
	case domain.RelationshipGoalCasual:
		return "something casual"
	case domain.RelationshipGoalShortTerm:
		return "something short-term"
	case domain.RelationshipGoalLongTerm:
		return "something long-term"
	case domain.RelationshipGoalMarriage:
		return "marriage"
	}
	return "the same thing"
}

// responseScore rewards a quick answer to the first like. Zero means the
// gap is unknown, which is neutral.
func responseScore(gap time.Duration) float64 {
	switch {
	case gap == 0:
		return neutralScore
	case gap < time.Hour:
		return 1.0
	case gap < 24*time.Hour:
		return 0.9
	case gap < 72*time.Hour:
		return 0.7
	case gap < 168*time.Hour:
		return 0.5
	case gap < 720*time.Hour:
		return 0.3
	}
	return 0.1
}

// Pace sync labels.
const (
	PaceSyncPerfect    = "Perfect Sync"
	PaceSyncGood       = "Good Sync"
	PaceSyncFair       = "Fair Sync"
	PaceSyncLag        = "Pace Lag"
	PaceSyncMismatched = "Mismatched Pace"
)

func paceSyncLevel(score float64) string {
	switch {
	case score >= 0.95:
		return PaceSyncPerfect
	case score >= 0.8:
		return PaceSyncGood
	case score >= 0.6:
		return PaceSyncFair
	case score >= 0.4:
		return PaceSyncLag
	}
	return PaceSyncMismatched
}
