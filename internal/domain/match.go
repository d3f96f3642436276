package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Match represents mutual interest between exactly two users. Its
// identifier is deterministic: the two participant IDs ordered
// lexicographically and joined with "_", so the same pair always maps to
// the same match regardless of argument order. Storage enforces
// uniqueness on this identifier, which turns duplicate-match detection
// into a plain key lookup.
type Match struct {
	ID        string
	UserA     uuid.UUID // lexicographically smaller participant
	UserB     uuid.UUID
	State     MatchState
	CreatedAt time.Time
	EndedAt   *time.Time
}

// MatchID derives the deterministic pair identifier.
// MatchID(a, b) == MatchID(b, a) for all a, b.
func MatchID(a, b uuid.UUID) string {
	first, second := OrderPair(a, b)
	return first.String() + "_" + second.String()
}

// OrderPair returns the two IDs in lexicographic order.
func OrderPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if strings.Compare(a.String(), b.String()) <= 0 {
		return a, b
	}
	return b, a
}

// NewMatch validates and constructs an ACTIVE match between two distinct
// users.
func NewMatch(a, b uuid.UUID, now time.Time) (*Match, error) {
	if a == uuid.Nil || b == uuid.Nil {
		return nil, NewValidationError("user_id", "required")
	}
	if a == b {
		return nil, NewValidationError("user_id", "cannot match a user with themselves")
	}

	first, second := OrderPair(a, b)
	return &Match{
		ID:        MatchID(a, b),
		UserA:     first,
		UserB:     second,
		State:     MatchStateActive,
		CreatedAt: now,
	}, nil
}

// Involves reports whether userID is one of the two participants.
func (m *Match) Involves(userID uuid.UUID) bool {
	return m.UserA == userID || m.UserB == userID
}

// OtherUser returns the participant that is not userID.
func (m *Match) OtherUser(userID uuid.UUID) (uuid.UUID, error) {
	switch userID {
	case m.UserA:
		return m.UserB, nil
	case m.UserB:
		return m.UserA, nil
	}
	return uuid.Nil, fmt.Errorf("user %s is not part of match %s: %w", userID, m.ID, ErrNotFound)
}

// CanTransitionTo reports whether the state machine permits moving from
// the current state to target. ACTIVE may move to any terminal state;
// terminal states accept nothing.
func (m *Match) CanTransitionTo(target MatchState) bool {
	if !target.IsValid() || target == MatchStateActive {
		return false
	}
	return m.State == MatchStateActive
}

// TransitionTo moves the match to a terminal state, recording when it
// ended.
func (m *Match) TransitionTo(target MatchState, now time.Time) error {
	if !m.CanTransitionTo(target) {
		return fmt.Errorf("match %s: transition %s -> %s: %w", m.ID, m.State, target, ErrConflict)
	}
	m.State = target
	m.EndedAt = &now
	return nil
}
