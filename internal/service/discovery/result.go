package discovery

import "github.com/amoura-app/amoura-backend/internal/domain"

// Candidate is a feed entry: a profile plus the distance to the seeker.
// DistanceKm is nil when either side has no location.
type Candidate struct {
	User       domain.User
	DistanceKm *float64
}
