package rest

import (
	"net/http"

	"github.com/amoura-app/amoura-backend/internal/transport/middleware"
)

// Handlers bundles the REST handlers the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Discovery *DiscoveryHandler
	Matching  *MatchingHandler
	Quality   *QualityHandler
	Undo      *UndoHandler
}

// NewRouter builds the HTTP routing table. Probe endpoints sit outside
// the API prefix; everything under /api expects a bearer token, which
// the auth middleware has already resolved into the request context.
func NewRouter(h Handlers, mw middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/candidates", h.Discovery.Candidates)

	mux.HandleFunc("POST /api/decisions", h.Matching.RecordDecision)
	mux.HandleFunc("GET /api/likers", h.Matching.PendingLikers)
	mux.HandleFunc("GET /api/matches", h.Matching.ListMatches)
	mux.HandleFunc("DELETE /api/matches/{id}", h.Matching.EndMatch)

	mux.HandleFunc("GET /api/matches/{id}/quality", h.Quality.MatchQuality)

	mux.HandleFunc("GET /api/undo", h.Undo.Status)
	mux.HandleFunc("POST /api/undo", h.Undo.Undo)

	return mw(mux)
}
