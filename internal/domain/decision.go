package domain

import (
	"time"

	"github.com/google/uuid"
)

// Decision is a recorded like or pass from one user toward another.
// Decisions are immutable once created; only an in-window undo may
// delete one.
type Decision struct {
	ID        uuid.UUID
	DeciderID uuid.UUID
	TargetID  uuid.UUID
	Direction Direction
	CreatedAt time.Time
}

// NewDecision validates and constructs a Decision.
func NewDecision(deciderID, targetID uuid.UUID, direction Direction, now time.Time) (*Decision, error) {
	var errs []FieldError

	if deciderID == uuid.Nil {
		errs = append(errs, FieldError{Field: "decider_id", Message: "required"})
	}
	if targetID == uuid.Nil {
		errs = append(errs, FieldError{Field: "target_id", Message: "required"})
	}
	if deciderID != uuid.Nil && deciderID == targetID {
		errs = append(errs, FieldError{Field: "target_id", Message: "cannot decide on yourself"})
	}
	if !direction.IsValid() {
		errs = append(errs, FieldError{Field: "direction", Message: "must be LIKE or PASS"})
	}
	if len(errs) > 0 {
		return nil, NewValidationErrors(errs)
	}

	return &Decision{
		ID:        uuid.New(),
		DeciderID: deciderID,
		TargetID:  targetID,
		Direction: direction,
		CreatedAt: now,
	}, nil
}

// IsLike reports whether the decision is a LIKE.
func (d *Decision) IsLike() bool { return d.Direction == DirectionLike }
