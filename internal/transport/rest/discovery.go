package rest

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/internal/service/discovery"
)

// discoveryService defines the minimal interface needed by DiscoveryHandler.
type discoveryService interface {
	FindCandidates(ctx context.Context, input discovery.FindCandidatesInput) ([]discovery.Candidate, error)
}

// DiscoveryHandler serves the candidate feed REST endpoint.
type DiscoveryHandler struct {
	svc discoveryService
	log *slog.Logger
}

// NewDiscoveryHandler creates a DiscoveryHandler.
func NewDiscoveryHandler(svc discoveryService, logger *slog.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{svc: svc, log: logger.With("handler", "discovery")}
}

type candidateResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Gender     string   `json:"gender"`
	Interests  []string `json:"interests,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type candidatesResponse struct {
	Candidates []candidateResponse `json:"candidates"`
}

// Candidates returns the caller's discovery feed.
// GET /api/candidates?limit=20
func (h *DiscoveryHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	var input discovery.FindCandidatesInput

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		input.Limit = limit
	}

	feed, err := h.svc.FindCandidates(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := candidatesResponse{Candidates: make([]candidateResponse, 0, len(feed))}
	for _, c := range feed {
		resp.Candidates = append(resp.Candidates, toCandidateResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

func toCandidateResponse(c discovery.Candidate) candidateResponse {
	return candidateResponse{
		ID:         c.User.ID.String(),
		Name:       c.User.Name,
		Age:        c.User.Age,
		Gender:     c.User.Gender.String(),
		Interests:  interestNames(c.User.Interests),
		DistanceKm: c.DistanceKm,
	}
}

func interestNames(s domain.InterestSet) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for i := range s {
		out = append(out, string(i))
	}
	sort.Strings(out)
	return out
}
