package matching

import (
	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// RecordDecisionInput holds the parameters for recording a like or pass.
type RecordDecisionInput struct {
	TargetID  uuid.UUID
	Direction domain.Direction
}

// Validate checks all fields and collects all errors.
func (i *RecordDecisionInput) Validate() error {
	var errs []domain.FieldError

	if i.TargetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be LIKE or PASS"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EndMatchInput holds the parameters for ending a match.
type EndMatchInput struct {
	MatchID string
	// State is the terminal state to move to. Empty means UNMATCHED.
	State domain.MatchState
}

// Validate checks all fields and collects all errors.
func (i *EndMatchInput) Validate() error {
	var errs []domain.FieldError

	if i.MatchID == "" {
		errs = append(errs, domain.FieldError{Field: "match_id", Message: "required"})
	}
	if i.State != "" && (!i.State.IsValid() || i.State == domain.MatchStateActive) {
		errs = append(errs, domain.FieldError{Field: "state", Message: "must be a terminal match state"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
