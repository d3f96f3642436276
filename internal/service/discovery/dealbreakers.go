package discovery

import (
	"fmt"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// passesDealbreakers reports whether the candidate clears every dealbreaker
// the seeker has set. An unset axis is no preference. A candidate missing a
// value on an active enum axis fails; a candidate missing height passes
// (height is optional, nobody is excluded for not entering it).
func passesDealbreakers(seeker, candidate *domain.User) bool {
	db := seeker.Dealbreakers

	if !db.HasAny() {
		return true
	}

	if db.HasSmoking() {
		if _, ok := db.AcceptableSmoking[candidate.Lifestyle.Smoking]; candidate.Lifestyle.Smoking == "" || !ok {
			return false
		}
	}

	if db.HasDrinking() {
		if _, ok := db.AcceptableDrinking[candidate.Lifestyle.Drinking]; candidate.Lifestyle.Drinking == "" || !ok {
			return false
		}
	}

	if db.HasKids() {
		if _, ok := db.AcceptableKids[candidate.Lifestyle.KidsStance]; candidate.Lifestyle.KidsStance == "" || !ok {
			return false
		}
	}

	if db.HasGoals() {
		if _, ok := db.AcceptableGoals[candidate.Lifestyle.RelationshipGoal]; candidate.Lifestyle.RelationshipGoal == "" || !ok {
			return false
		}
	}

	if db.HasEducation() {
		if _, ok := db.AcceptableEducation[candidate.Lifestyle.Education]; candidate.Lifestyle.Education == "" || !ok {
			return false
		}
	}

	if db.HasHeight() && candidate.HeightCm != nil {
		if db.MinHeightCm != nil && *candidate.HeightCm < *db.MinHeightCm {
			return false
		}
		if db.MaxHeightCm != nil && *candidate.HeightCm > *db.MaxHeightCm {
			return false
		}
	}

	if db.HasAgeDiff() && seeker.Age > 0 && candidate.Age > 0 {
		if abs(seeker.Age-candidate.Age) > *db.MaxAgeDifference {
			return false
		}
	}

	return true
}

// FailedDealbreakers lists which of the seeker's dealbreakers the candidate
// fails, in human-readable form. Empty when the candidate passes.
func FailedDealbreakers(seeker, candidate *domain.User) []string {
	db := seeker.Dealbreakers
	var failures []string

	if db.HasSmoking() {
		if candidate.Lifestyle.Smoking == "" {
			failures = append(failures, "smoking status not specified")
		} else if _, ok := db.AcceptableSmoking[candidate.Lifestyle.Smoking]; !ok {
			failures = append(failures, "smoking: "+string(candidate.Lifestyle.Smoking))
		}
	}

	if db.HasDrinking() {
		if candidate.Lifestyle.Drinking == "" {
			failures = append(failures, "drinking status not specified")
		} else if _, ok := db.AcceptableDrinking[candidate.Lifestyle.Drinking]; !ok {
			failures = append(failures, "drinking: "+string(candidate.Lifestyle.Drinking))
		}
	}

	if db.HasKids() {
		if candidate.Lifestyle.KidsStance == "" {
			failures = append(failures, "kids stance not specified")
		} else if _, ok := db.AcceptableKids[candidate.Lifestyle.KidsStance]; !ok {
			failures = append(failures, "kids: "+string(candidate.Lifestyle.KidsStance))
		}
	}

	if db.HasGoals() {
		if candidate.Lifestyle.RelationshipGoal == "" {
			failures = append(failures, "relationship goal not specified")
		} else if _, ok := db.AcceptableGoals[candidate.Lifestyle.RelationshipGoal]; !ok {
			failures = append(failures, "looking for: "+string(candidate.Lifestyle.RelationshipGoal))
		}
	}

	if db.HasEducation() {
		if candidate.Lifestyle.Education == "" {
			failures = append(failures, "education not specified")
		} else if _, ok := db.AcceptableEducation[candidate.Lifestyle.Education]; !ok {
			failures = append(failures, "education: "+string(candidate.Lifestyle.Education))
		}
	}

	if db.HasHeight() && candidate.HeightCm != nil {
		if db.MinHeightCm != nil && *candidate.HeightCm < *db.MinHeightCm {
			failures = append(failures, fmt.Sprintf("height too short: %d cm", *candidate.HeightCm))
		}
		if db.MaxHeightCm != nil && *candidate.HeightCm > *db.MaxHeightCm {
			failures = append(failures, fmt.Sprintf("height too tall: %d cm", *candidate.HeightCm))
		}
	}

	if db.HasAgeDiff() && seeker.Age > 0 && candidate.Age > 0 {
		if diff := abs(seeker.Age - candidate.Age); diff > *db.MaxAgeDifference {
			failures = append(failures, fmt.Sprintf("age difference: %d years (max %d)", diff, *db.MaxAgeDifference))
		}
	}

	return failures
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
