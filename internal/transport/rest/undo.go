package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/amoura-app/amoura-backend/internal/service/undo"
)

// undoService defines the minimal interface needed by UndoHandler.
type undoService interface {
	GetStatus(ctx context.Context) (*undo.Status, error)
	Undo(ctx context.Context) (*undo.Outcome, error)
}

// UndoHandler serves the undo REST endpoints.
type UndoHandler struct {
	svc undoService
	log *slog.Logger
}

// NewUndoHandler creates an UndoHandler.
func NewUndoHandler(svc undoService, logger *slog.Logger) *UndoHandler {
	return &UndoHandler{svc: svc, log: logger.With("handler", "undo")}
}

type undoStatusResponse struct {
	CanUndo          bool   `json:"can_undo"`
	SecondsRemaining int    `json:"seconds_remaining"`
	TargetID         string `json:"target_id,omitempty"`
	Direction        string `json:"direction,omitempty"`
}

// Status reports whether the caller's last decision is still reversible.
// GET /api/undo
func (h *UndoHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.GetStatus(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := undoStatusResponse{
		CanUndo:          status.CanUndo,
		SecondsRemaining: status.SecondsRemaining,
		Direction:        status.Direction.String(),
	}
	if status.CanUndo {
		resp.TargetID = status.TargetID.String()
	}

	writeJSON(w, http.StatusOK, resp)
}

type undoResponse struct {
	Undone       bool   `json:"undone"`
	Reason       string `json:"reason,omitempty"`
	TargetID     string `json:"target_id,omitempty"`
	Direction    string `json:"direction,omitempty"`
	MatchDeleted bool   `json:"match_deleted"`
}

// Undo reverts the caller's last decision if the window is still open.
// Declines (nothing to undo, window expired) are 200 responses with
// Undone false, not errors.
// POST /api/undo
func (h *UndoHandler) Undo(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.svc.Undo(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := undoResponse{
		Undone:       outcome.Undone,
		Reason:       outcome.Reason,
		Direction:    outcome.Direction.String(),
		MatchDeleted: outcome.MatchDeleted,
	}
	if outcome.Undone {
		resp.TargetID = outcome.TargetID.String()
	}

	writeJSON(w, http.StatusOK, resp)
}
