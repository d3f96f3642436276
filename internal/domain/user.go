package domain

import (
	"time"

	"github.com/google/uuid"
)

// PacePreferences holds the four independent communication-pace axes.
// Zero values mean "not declared"; scoring treats an incomplete set as
// neutral.
type PacePreferences struct {
	MessagingFrequency MessagingFrequency
	TimeToFirstDate    TimeToFirstDate
	CommunicationStyle CommunicationStyle
	DepthPreference    DepthPreference
}

// IsComplete reports whether all four axes are declared.
func (p PacePreferences) IsComplete() bool {
	return p.MessagingFrequency.IsValid() &&
		p.TimeToFirstDate.IsValid() &&
		p.CommunicationStyle.IsValid() &&
		p.DepthPreference.IsValid()
}

// Per-axis points for pace alignment. Each of the four axes contributes
// up to paceExactPoints; the sum is normalized by paceMaxPoints.
const (
	paceExactPoints    = 25
	paceWildcardPoints = 20
	paceAdjacentPoints = 15
	paceFarPoints      = 5
	paceMaxPoints      = 100
)

// SyncWith returns how aligned two complete pace profiles are, in
// [0.0, 1.0]. Exact agreement on an axis scores full points, adjacent
// positions partial, distant positions minimal. On the communication
// style and depth axes a wildcard on either side scores just below
// exact. Returns -1 when either profile is incomplete.
func (p PacePreferences) SyncWith(other PacePreferences) float64 {
	if !p.IsComplete() || !other.IsComplete() {
		return -1
	}

	points := ordinalPoints(p.MessagingFrequency.ordinal(), other.MessagingFrequency.ordinal())
	points += ordinalPoints(p.TimeToFirstDate.ordinal(), other.TimeToFirstDate.ordinal())

	if p.CommunicationStyle.IsWildcard() || other.CommunicationStyle.IsWildcard() {
		points += paceWildcardPoints
	} else {
		points += ordinalPoints(p.CommunicationStyle.ordinal(), other.CommunicationStyle.ordinal())
	}

	if p.DepthPreference.IsWildcard() || other.DepthPreference.IsWildcard() {
		points += paceWildcardPoints
	} else {
		points += ordinalPoints(p.DepthPreference.ordinal(), other.DepthPreference.ordinal())
	}

	return float64(points) / paceMaxPoints
}

func ordinalPoints(a, b int) int {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return paceExactPoints
	case 1:
		return paceAdjacentPoints
	}
	return paceFarPoints
}

// Lifestyle holds the declared lifestyle attributes. Zero values mean
// "not declared"; missing values are neutral in scoring but fail active
// dealbreakers.
type Lifestyle struct {
	Smoking          Smoking
	Drinking         Drinking
	KidsStance       KidsStance
	RelationshipGoal RelationshipGoal
	Education        Education
}

// User is a dating profile. This engine treats profiles as read-only;
// profile CRUD lives in an external collaborator.
type User struct {
	ID    uuid.UUID
	Name  string
	State UserState

	Gender       Gender
	InterestedIn map[Gender]struct{}

	Age    int
	MinAge int
	MaxAge int

	// Lat/Lon are nil when the user has not set a location. Users without
	// a location skip the distance filter and sort last.
	Lat *float64
	Lon *float64

	MaxDistanceKm int
	HeightCm      *int

	Interests    InterestSet
	Lifestyle    Lifestyle
	Pace         PacePreferences
	Dealbreakers Dealbreakers

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the profile is eligible for discovery.
func (u *User) IsActive() bool { return u.State == UserStateActive }

// HasLocation reports whether both coordinates are set.
func (u *User) HasLocation() bool { return u.Lat != nil && u.Lon != nil }

// InterestedInGender reports whether the user's gender-interest set
// contains g.
func (u *User) InterestedInGender(g Gender) bool {
	_, ok := u.InterestedIn[g]
	return ok
}

// AgeInRange reports whether age falls within the user's acceptable
// [MinAge, MaxAge] band.
func (u *User) AgeInRange(age int) bool {
	return age >= u.MinAge && age <= u.MaxAge
}

// CandidateFilter narrows the discovery candidate pool at the storage layer.
// It covers the symmetric gender and age checks; distance and dealbreakers
// are evaluated in memory by the caller.
type CandidateFilter struct {
	SeekerID     uuid.UUID
	SeekerGender Gender
	SeekerAge    int

	// Genders the seeker is interested in.
	Genders []Gender
	// Seeker's acceptable candidate age range.
	MinAge int
	MaxAge int

	// IDs the seeker has already decided on.
	ExcludedIDs []uuid.UUID

	Limit int
}

// FilterFor builds the storage filter for this seeker.
func (u *User) FilterFor(excluded []uuid.UUID, limit int) CandidateFilter {
	genders := make([]Gender, 0, len(u.InterestedIn))
	for g := range u.InterestedIn {
		genders = append(genders, g)
	}
	return CandidateFilter{
		SeekerID:     u.ID,
		SeekerGender: u.Gender,
		SeekerAge:    u.Age,
		Genders:      genders,
		MinAge:       u.MinAge,
		MaxAge:       u.MaxAge,
		ExcludedIDs:  excluded,
		Limit:        limit,
	}
}
