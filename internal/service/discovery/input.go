package discovery

import "github.com/amoura-app/amoura-backend/internal/domain"

// FindCandidatesInput holds the parameters for fetching the discovery feed.
type FindCandidatesInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *FindCandidatesInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 100 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
