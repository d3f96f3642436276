package domain

// Gender is the declared gender of a profile.
type Gender string

const (
	GenderFemale    Gender = "FEMALE"
	GenderMale      Gender = "MALE"
	GenderNonBinary Gender = "NON_BINARY"
	GenderOther     Gender = "OTHER"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderNonBinary, GenderOther:
		return true
	}
	return false
}

// UserState is the lifecycle state of a profile. Only ACTIVE profiles are
// eligible for discovery.
type UserState string

const (
	UserStateIncomplete UserState = "INCOMPLETE"
	UserStateActive     UserState = "ACTIVE"
	UserStatePaused     UserState = "PAUSED"
	UserStateSuspended  UserState = "SUSPENDED"
	UserStateDeleted    UserState = "DELETED"
)

func (s UserState) String() string { return string(s) }

func (s UserState) IsValid() bool {
	switch s {
	case UserStateIncomplete, UserStateActive, UserStatePaused, UserStateSuspended, UserStateDeleted:
		return true
	}
	return false
}

// Direction is the binary outcome of a swipe.
type Direction string

const (
	DirectionLike Direction = "LIKE"
	DirectionPass Direction = "PASS"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	return d == DirectionLike || d == DirectionPass
}

// MatchState is the lifecycle state of a match. ACTIVE is the only
// non-terminal state; all transitions out of it are one-way.
type MatchState string

const (
	MatchStateActive       MatchState = "ACTIVE"
	MatchStateUnmatched    MatchState = "UNMATCHED"
	MatchStateFriends      MatchState = "FRIENDS"
	MatchStateGracefulExit MatchState = "GRACEFUL_EXIT"
	MatchStateBlocked      MatchState = "BLOCKED"
)

func (s MatchState) String() string { return string(s) }

func (s MatchState) IsValid() bool {
	switch s {
	case MatchStateActive, MatchStateUnmatched, MatchStateFriends, MatchStateGracefulExit, MatchStateBlocked:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s MatchState) IsTerminal() bool {
	return s.IsValid() && s != MatchStateActive
}

// ---------------------------------------------------------------------------
// Lifestyle axes
// ---------------------------------------------------------------------------

// Smoking is a lifestyle attribute. The zero value means "not declared".
type Smoking string

const (
	SmokingNever     Smoking = "NEVER"
	SmokingSometimes Smoking = "SOMETIMES"
	SmokingRegularly Smoking = "REGULARLY"
)

func (s Smoking) String() string { return string(s) }

func (s Smoking) IsValid() bool {
	switch s {
	case SmokingNever, SmokingSometimes, SmokingRegularly:
		return true
	}
	return false
}

// Drinking is a lifestyle attribute. The zero value means "not declared".
type Drinking string

const (
	DrinkingNever     Drinking = "NEVER"
	DrinkingSocially  Drinking = "SOCIALLY"
	DrinkingRegularly Drinking = "REGULARLY"
)

func (d Drinking) String() string { return string(d) }

func (d Drinking) IsValid() bool {
	switch d {
	case DrinkingNever, DrinkingSocially, DrinkingRegularly:
		return true
	}
	return false
}

// KidsStance is a lifestyle attribute. The zero value means "not declared".
type KidsStance string

const (
	KidsStanceNo      KidsStance = "NO"
	KidsStanceOpen    KidsStance = "OPEN"
	KidsStanceSomeday KidsStance = "SOMEDAY"
	KidsStanceHasKids KidsStance = "HAS_KIDS"
)

func (k KidsStance) String() string { return string(k) }

func (k KidsStance) IsValid() bool {
	switch k {
	case KidsStanceNo, KidsStanceOpen, KidsStanceSomeday, KidsStanceHasKids:
		return true
	}
	return false
}

// CompatibleWith reports whether two stances can coexist: equal stances
// always, OPEN pairs with anything, and SOMEDAY pairs with HAS_KIDS.
func (k KidsStance) CompatibleWith(other KidsStance) bool {
	if k == other {
		return true
	}
	if k == KidsStanceOpen || other == KidsStanceOpen {
		return true
	}
	if (k == KidsStanceSomeday && other == KidsStanceHasKids) ||
		(k == KidsStanceHasKids && other == KidsStanceSomeday) {
		return true
	}
	return false
}

// RelationshipGoal is what a user is looking for. The zero value means
// "not declared".
type RelationshipGoal string

const (
	RelationshipGoalCasual    RelationshipGoal = "CASUAL"
	RelationshipGoalShortTerm RelationshipGoal = "SHORT_TERM"
	RelationshipGoalLongTerm  RelationshipGoal = "LONG_TERM"
	RelationshipGoalMarriage  RelationshipGoal = "MARRIAGE"
	RelationshipGoalUnsure    RelationshipGoal = "UNSURE"
)

func (r RelationshipGoal) String() string { return string(r) }

func (r RelationshipGoal) IsValid() bool {
	switch r {
	case RelationshipGoalCasual, RelationshipGoalShortTerm, RelationshipGoalLongTerm,
		RelationshipGoalMarriage, RelationshipGoalUnsure:
		return true
	}
	return false
}

// Education is the highest education level. The zero value means
// "not declared".
type Education string

const (
	EducationHighSchool  Education = "HIGH_SCHOOL"
	EducationSomeCollege Education = "SOME_COLLEGE"
	EducationTradeSchool Education = "TRADE_SCHOOL"
	EducationBachelors   Education = "BACHELORS"
	EducationMasters     Education = "MASTERS"
	EducationPhD         Education = "PHD"
)

func (e Education) String() string { return string(e) }

func (e Education) IsValid() bool {
	switch e {
	case EducationHighSchool, EducationSomeCollege, EducationTradeSchool,
		EducationBachelors, EducationMasters, EducationPhD:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Communication pace axes
// ---------------------------------------------------------------------------

// MessagingFrequency is how often a user wants to message.
type MessagingFrequency string

const (
	MessagingRarely     MessagingFrequency = "RARELY"
	MessagingOften      MessagingFrequency = "OFTEN"
	MessagingConstantly MessagingFrequency = "CONSTANTLY"
)

func (m MessagingFrequency) IsValid() bool {
	switch m {
	case MessagingRarely, MessagingOften, MessagingConstantly:
		return true
	}
	return false
}

// ordinal returns the position on the axis for distance scoring.
func (m MessagingFrequency) ordinal() int {
	switch m {
	case MessagingRarely:
		return 0
	case MessagingOften:
		return 1
	case MessagingConstantly:
		return 2
	}
	return -1
}

// TimeToFirstDate is how quickly a user wants to meet in person.
type TimeToFirstDate string

const (
	FirstDateQuickly TimeToFirstDate = "QUICKLY"
	FirstDateFewDays TimeToFirstDate = "FEW_DAYS"
	FirstDateWeeks   TimeToFirstDate = "WEEKS"
	FirstDateMonths  TimeToFirstDate = "MONTHS"
)

func (t TimeToFirstDate) IsValid() bool {
	switch t {
	case FirstDateQuickly, FirstDateFewDays, FirstDateWeeks, FirstDateMonths:
		return true
	}
	return false
}

func (t TimeToFirstDate) ordinal() int {
	switch t {
	case FirstDateQuickly:
		return 0
	case FirstDateFewDays:
		return 1
	case FirstDateWeeks:
		return 2
	case FirstDateMonths:
		return 3
	}
	return -1
}

// CommunicationStyle is the preferred channel mix.
// MIX_OF_EVERYTHING acts as a wildcard in pace scoring.
type CommunicationStyle string

const (
	CommStyleTextOnly     CommunicationStyle = "TEXT_ONLY"
	CommStyleVoiceNotes   CommunicationStyle = "VOICE_NOTES"
	CommStyleVideoCalls   CommunicationStyle = "VIDEO_CALLS"
	CommStyleInPersonOnly CommunicationStyle = "IN_PERSON_ONLY"
	CommStyleMix          CommunicationStyle = "MIX_OF_EVERYTHING"
)

func (c CommunicationStyle) IsValid() bool {
	switch c {
	case CommStyleTextOnly, CommStyleVoiceNotes, CommStyleVideoCalls, CommStyleInPersonOnly, CommStyleMix:
		return true
	}
	return false
}

// IsWildcard reports whether this style matches any other.
func (c CommunicationStyle) IsWildcard() bool { return c == CommStyleMix }

func (c CommunicationStyle) ordinal() int {
	switch c {
	case CommStyleTextOnly:
		return 0
	case CommStyleVoiceNotes:
		return 1
	case CommStyleVideoCalls:
		return 2
	case CommStyleInPersonOnly:
		return 3
	case CommStyleMix:
		return 4
	}
	return -1
}

// DepthPreference is the preferred conversation depth.
// DEPENDS_ON_VIBE acts as a wildcard in pace scoring.
type DepthPreference string

const (
	DepthSmallTalk     DepthPreference = "SMALL_TALK"
	DepthDeepChat      DepthPreference = "DEEP_CHAT"
	DepthExistential   DepthPreference = "EXISTENTIAL"
	DepthDependsOnVibe DepthPreference = "DEPENDS_ON_VIBE"
)

func (d DepthPreference) IsValid() bool {
	switch d {
	case DepthSmallTalk, DepthDeepChat, DepthExistential, DepthDependsOnVibe:
		return true
	}
	return false
}

// IsWildcard reports whether this preference matches any other.
func (d DepthPreference) IsWildcard() bool { return d == DepthDependsOnVibe }

func (d DepthPreference) ordinal() int {
	switch d {
	case DepthSmallTalk:
		return 0
	case DepthDeepChat:
		return 1
	case DepthExistential:
		return 2
	case DepthDependsOnVibe:
		return 3
	}
	return -1
}
