package domain

import (
	"time"

	"github.com/google/uuid"
)

// UndoState is the single overwritable undo slot for one user: the most
// recent decision, the match it created (if any), and the instant the
// grace window closes. A new decision replaces the slot wholesale; it is
// never a stack.
type UndoState struct {
	UserID     uuid.UUID
	DecisionID uuid.UUID
	TargetID   uuid.UUID
	Direction  Direction
	MatchID    *string
	RecordedAt time.Time
	ExpiresAt  time.Time
}

// IsExpired reports whether the undo window has closed at now.
func (u *UndoState) IsExpired(now time.Time) bool {
	return now.After(u.ExpiresAt)
}

// SecondsRemaining returns the whole seconds left in the window, never
// negative.
func (u *UndoState) SecondsRemaining(now time.Time) int {
	remaining := u.ExpiresAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds())
}
