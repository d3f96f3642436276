package undo

import (
	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// Reasons an undo request is declined. Declines are outcomes the caller
// shows to the user, not errors.
const (
	ReasonNothingToUndo = "No swipe to undo"
	ReasonWindowExpired = "Undo window expired"
)

// Status describes the current undo slot from the owner's point of view.
type Status struct {
	CanUndo          bool
	SecondsRemaining int
	TargetID         uuid.UUID
	Direction        domain.Direction
}

// Outcome is the result of an undo attempt.
type Outcome struct {
	Undone bool
	// Reason is set when Undone is false.
	Reason string

	TargetID     uuid.UUID
	Direction    domain.Direction
	MatchDeleted bool
}
