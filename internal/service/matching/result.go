package matching

import "github.com/amoura-app/amoura-backend/internal/domain"

// SwipeOutcome is the result of recording a decision. Exactly one of the
// boolean flags may be set; Match is non-nil only when the decision
// completed a mutual like.
type SwipeOutcome struct {
	Decision *domain.Decision
	Match    *domain.Match

	// AlreadyDecided means the decider had already decided on this target
	// and nothing was recorded.
	AlreadyDecided bool

	// LimitReached means the daily like limit blocked the decision.
	LimitReached bool
}

// Matched reports whether the decision produced a match.
func (o *SwipeOutcome) Matched() bool { return o.Match != nil }

// PendingLiker is a user who liked the caller and has not been decided
// on yet.
type PendingLiker struct {
	User domain.User
}
