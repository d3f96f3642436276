package domain

// Dealbreakers are a user's hard filters. They are one-way: a seeker's
// dealbreakers exclude candidates from the seeker's feed only.
//
// An empty accepted-value set means "no preference" for that axis, not
// "reject everything". Nil bound pointers mean the bound is not set.
type Dealbreakers struct {
	AcceptableSmoking   map[Smoking]struct{}
	AcceptableDrinking  map[Drinking]struct{}
	AcceptableKids      map[KidsStance]struct{}
	AcceptableGoals     map[RelationshipGoal]struct{}
	AcceptableEducation map[Education]struct{}

	MinHeightCm *int
	MaxHeightCm *int

	// MaxAgeDifference is a stricter bound than the mutual age-range
	// preference; nil means not set.
	MaxAgeDifference *int
}

func (d Dealbreakers) HasSmoking() bool   { return len(d.AcceptableSmoking) > 0 }
func (d Dealbreakers) HasDrinking() bool  { return len(d.AcceptableDrinking) > 0 }
func (d Dealbreakers) HasKids() bool      { return len(d.AcceptableKids) > 0 }
func (d Dealbreakers) HasGoals() bool     { return len(d.AcceptableGoals) > 0 }
func (d Dealbreakers) HasEducation() bool { return len(d.AcceptableEducation) > 0 }
func (d Dealbreakers) HasHeight() bool    { return d.MinHeightCm != nil || d.MaxHeightCm != nil }
func (d Dealbreakers) HasAgeDiff() bool   { return d.MaxAgeDifference != nil }

// HasAny reports whether any axis is active.
func (d Dealbreakers) HasAny() bool {
	return d.HasSmoking() || d.HasDrinking() || d.HasKids() ||
		d.HasGoals() || d.HasEducation() || d.HasHeight() || d.HasAgeDiff()
}
