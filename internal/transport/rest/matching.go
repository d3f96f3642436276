package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/internal/service/matching"
)

// matchingService defines the minimal interface needed by MatchingHandler.
type matchingService interface {
	RecordDecision(ctx context.Context, input matching.RecordDecisionInput) (*matching.SwipeOutcome, error)
	PendingLikers(ctx context.Context) ([]matching.PendingLiker, error)
	ListMatches(ctx context.Context) ([]domain.Match, error)
	EndMatch(ctx context.Context, input matching.EndMatchInput) (*domain.Match, error)
}

// MatchingHandler serves decision and match REST endpoints.
type MatchingHandler struct {
	svc matchingService
	log *slog.Logger
}

// NewMatchingHandler creates a MatchingHandler.
func NewMatchingHandler(svc matchingService, logger *slog.Logger) *MatchingHandler {
	return &MatchingHandler{svc: svc, log: logger.With("handler", "matching")}
}

type decisionRequest struct {
	TargetID  string `json:"target_id"`
	Direction string `json:"direction"`
}

type matchResponse struct {
	ID        string     `json:"id"`
	UserA     string     `json:"user_a"`
	UserB     string     `json:"user_b"`
	State     string     `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

type decisionResponse struct {
	Matched        bool           `json:"matched"`
	AlreadyDecided bool           `json:"already_decided"`
	LimitReached   bool           `json:"limit_reached"`
	Match          *matchResponse `json:"match,omitempty"`
}

// RecordDecision records a like or pass on a target profile.
// POST /api/decisions
func (h *MatchingHandler) RecordDecision(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "target_id must be a UUID")
		return
	}

	outcome, err := h.svc.RecordDecision(r.Context(), matching.RecordDecisionInput{
		TargetID:  targetID,
		Direction: domain.Direction(req.Direction),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := decisionResponse{
		Matched:        outcome.Matched(),
		AlreadyDecided: outcome.AlreadyDecided,
		LimitReached:   outcome.LimitReached,
	}
	if outcome.Match != nil {
		m := toMatchResponse(*outcome.Match)
		resp.Match = &m
	}

	writeJSON(w, http.StatusOK, resp)
}

type likersResponse struct {
	Likers []candidateResponse `json:"likers"`
}

// PendingLikers returns users who liked the caller and are still undecided.
// GET /api/likers
func (h *MatchingHandler) PendingLikers(w http.ResponseWriter, r *http.Request) {
	likers, err := h.svc.PendingLikers(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := likersResponse{Likers: make([]candidateResponse, 0, len(likers))}
	for _, l := range likers {
		resp.Likers = append(resp.Likers, candidateResponse{
			ID:        l.User.ID.String(),
			Name:      l.User.Name,
			Age:       l.User.Age,
			Gender:    l.User.Gender.String(),
			Interests: interestNames(l.User.Interests),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type matchesResponse struct {
	Matches []matchResponse `json:"matches"`
}

// ListMatches returns all matches involving the caller.
// GET /api/matches
func (h *MatchingHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.svc.ListMatches(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := matchesResponse{Matches: make([]matchResponse, 0, len(matches))}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, toMatchResponse(m))
	}

	writeJSON(w, http.StatusOK, resp)
}

// EndMatch moves a match from ACTIVE to a terminal state. The state
// query parameter defaults to UNMATCHED.
// DELETE /api/matches/{id}?state=GRACEFUL_EXIT
func (h *MatchingHandler) EndMatch(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.EndMatch(r.Context(), matching.EndMatchInput{
		MatchID: r.PathValue("id"),
		State:   domain.MatchState(r.URL.Query().Get("state")),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponse(*m))
}

func toMatchResponse(m domain.Match) matchResponse {
	return matchResponse{
		ID:        m.ID,
		UserA:     m.UserA.String(),
		UserB:     m.UserB.String(),
		State:     m.State.String(),
		CreatedAt: m.CreatedAt,
		EndedAt:   m.EndedAt,
	}
}
