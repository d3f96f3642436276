package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/internal/service/quality"
)

// qualityService defines the minimal interface needed by QualityHandler.
type qualityService interface {
	ComputeQuality(ctx context.Context, input quality.ComputeQualityInput) (*domain.CompatibilityScore, error)
}

// QualityHandler serves the match quality REST endpoint.
type QualityHandler struct {
	svc qualityService
	log *slog.Logger
}

// NewQualityHandler creates a QualityHandler.
func NewQualityHandler(svc qualityService, logger *slog.Logger) *QualityHandler {
	return &QualityHandler{svc: svc, log: logger.With("handler", "quality")}
}

type subScoresResponse struct {
	Distance  float64 `json:"distance"`
	Age       float64 `json:"age"`
	Interest  float64 `json:"interest"`
	Lifestyle float64 `json:"lifestyle"`
	Pace      float64 `json:"pace"`
	Response  float64 `json:"response"`
}

type qualityResponse struct {
	MatchID     string            `json:"match_id"`
	OtherUserID string            `json:"other_user_id"`
	Total       int               `json:"total"`
	Tier        string            `json:"tier"`
	StarRating  int               `json:"star_rating"`
	SubScores   subScoresResponse `json:"sub_scores"`

	DistanceKm       float64  `json:"distance_km"`
	AgeDifference    int      `json:"age_difference"`
	SharedInterests  []string `json:"shared_interests,omitempty"`
	LifestyleMatches []string `json:"lifestyle_matches,omitempty"`
	PaceSyncLevel    string   `json:"pace_sync_level"`
	Highlights       []string `json:"highlights,omitempty"`

	ComputedAt time.Time `json:"computed_at"`
}

// MatchQuality computes the compatibility score for a match from the
// caller's perspective.
// GET /api/matches/{id}/quality
func (h *QualityHandler) MatchQuality(w http.ResponseWriter, r *http.Request) {
	score, err := h.svc.ComputeQuality(r.Context(), quality.ComputeQualityInput{
		MatchID: r.PathValue("id"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQualityResponse(score))
}

func toQualityResponse(score *domain.CompatibilityScore) qualityResponse {
	shared := make([]string, 0, len(score.SharedInterests))
	for _, i := range score.SharedInterests {
		shared = append(shared, string(i))
	}

	return qualityResponse{
		MatchID:     score.MatchID,
		OtherUserID: score.OtherUserID.String(),
		Total:       score.Total,
		Tier:        score.Tier(),
		StarRating:  score.StarRating(),
		SubScores: subScoresResponse{
			Distance:  score.DistanceScore,
			Age:       score.AgeScore,
			Interest:  score.InterestScore,
			Lifestyle: score.LifestyleScore,
			Pace:      score.PaceScore,
			Response:  score.ResponseScore,
		},
		DistanceKm:       score.DistanceKm,
		AgeDifference:    score.AgeDifference,
		SharedInterests:  shared,
		LifestyleMatches: score.LifestyleMatches,
		PaceSyncLevel:    score.PaceSyncLevel,
		Highlights:       score.Highlights,
		ComputedAt:       score.ComputedAt,
	}
}
