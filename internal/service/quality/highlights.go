package quality

import (
	"fmt"
	"strings"
	"time"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// maxHighlights caps the feed card to its strongest signals.
const maxHighlights = 5

// highlights renders the score into short strings for the match card, in
// fixed priority order: proximity, interests, lifestyle, pace, response
// speed, age.
func highlights(score *domain.CompatibilityScore, me, other *domain.User) []string {
	var out []string

	if me.HasLocation() && other.HasLocation() {
		switch km := score.DistanceKm; {
		case km < 5:
			out = append(out, fmt.Sprintf("Lives nearby (%.1f km away)", km))
		case km < 15:
			out = append(out, fmt.Sprintf("%.0f km away", km))
		}
	}

	if n := len(score.SharedInterests); n == 1 {
		out = append(out, "You both enjoy "+score.SharedInterests[0].DisplayName())
	} else if n > 1 {
		out = append(out, sharedInterestsLine(score.SharedInterests))
	}

	out = append(out, score.LifestyleMatches...)

	switch {
	case score.PaceScore >= 0.95:
		out = append(out, "Total Pace Sync! ⚡")
	case score.PaceScore >= 0.8:
		out = append(out, "Great communication sync")
	}

	if score.TimeBetweenLikes > 0 && score.TimeBetweenLikes < 24*time.Hour {
		out = append(out, "Quick mutual interest!")
	}

	if score.AgeDifference <= 2 {
		out = append(out, "Similar age")
	}

	if len(out) > maxHighlights {
		out = out[:maxHighlights]
	}
	return out
}

func sharedInterestsLine(shared []domain.Interest) string {
	names := make([]string, 0, 3)
	for _, i := range shared {
		if len(names) == 3 {
			break
		}
		names = append(names, i.DisplayName())
	}

	line := fmt.Sprintf("You share %d interests: %s", len(shared), strings.Join(names, ", "))
	if rest := len(shared) - len(names); rest > 0 {
		line += fmt.Sprintf(" and %d more", rest)
	}
	return line
}
