package domain

import "strings"

// Interest is an interest tag drawn from a fixed vocabulary.
type Interest string

const (
	InterestHiking      Interest = "HIKING"
	InterestCamping     Interest = "CAMPING"
	InterestFishing     Interest = "FISHING"
	InterestCycling     Interest = "CYCLING"
	InterestRunning     Interest = "RUNNING"
	InterestYoga        Interest = "YOGA"
	InterestGym         Interest = "GYM"
	InterestClimbing    Interest = "CLIMBING"
	InterestPainting    Interest = "PAINTING"
	InterestPhotography Interest = "PHOTOGRAPHY"
	InterestMusic       Interest = "MUSIC"
	InterestConcerts    Interest = "CONCERTS"
	InterestTheater     Interest = "THEATER"
	InterestMuseums     Interest = "MUSEUMS"
	InterestReading     Interest = "READING"
	InterestWriting     Interest = "WRITING"
	InterestCooking     Interest = "COOKING"
	InterestBaking      Interest = "BAKING"
	InterestWineTasting Interest = "WINE_TASTING"
	InterestCoffee      Interest = "COFFEE"
	InterestFoodie      Interest = "FOODIE"
	InterestGaming      Interest = "GAMING"
	InterestBoardGames  Interest = "BOARD_GAMES"
	InterestTech        Interest = "TECH"
	InterestMovies      Interest = "MOVIES"
	InterestDancing     Interest = "DANCING"
	InterestTravel      Interest = "TRAVEL"
	InterestVolunteering Interest = "VOLUNTEERING"
	InterestPets        Interest = "PETS"
	InterestGardening   Interest = "GARDENING"
)

func (i Interest) String() string { return string(i) }

// DisplayName renders the tag for humans: "WINE_TASTING" becomes
// "Wine Tasting".
func (i Interest) DisplayName() string {
	words := strings.Split(string(i), "_")
	for n, w := range words {
		if w == "" {
			continue
		}
		words[n] = string(w[0]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// AllInterests is the fixed vocabulary of interest tags.
var AllInterests = []Interest{
	InterestHiking, InterestCamping, InterestFishing, InterestCycling,
	InterestRunning, InterestYoga, InterestGym, InterestClimbing,
	InterestPainting, InterestPhotography, InterestMusic, InterestConcerts,
	InterestTheater, InterestMuseums, InterestReading, InterestWriting,
	InterestCooking, InterestBaking, InterestWineTasting, InterestCoffee,
	InterestFoodie, InterestGaming, InterestBoardGames, InterestTech,
	InterestMovies, InterestDancing, InterestTravel, InterestVolunteering,
	InterestPets, InterestGardening,
}

func (i Interest) IsValid() bool {
	for _, known := range AllInterests {
		if i == known {
			return true
		}
	}
	return false
}

// InterestSet is a set of interest tags.
type InterestSet map[Interest]struct{}

// NewInterestSet builds a set from the given tags.
func NewInterestSet(interests ...Interest) InterestSet {
	s := make(InterestSet, len(interests))
	for _, i := range interests {
		s[i] = struct{}{}
	}
	return s
}

// Contains reports membership.
func (s InterestSet) Contains(i Interest) bool {
	_, ok := s[i]
	return ok
}

// Intersect returns the tags present in both sets.
func (s InterestSet) Intersect(other InterestSet) InterestSet {
	out := InterestSet{}
	for i := range s {
		if other.Contains(i) {
			out[i] = struct{}{}
		}
	}
	return out
}

// UnionSize returns the size of the union of both sets.
func (s InterestSet) UnionSize(other InterestSet) int {
	n := len(s)
	for i := range other {
		if !s.Contains(i) {
			n++
		}
	}
	return n
}
