package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewOutcome is the user's answer to a question, ready for submission.
type ReviewOutcome struct {
	CardID     uuid.UUID
	Grade      ReviewGrade
	DurationMs *int
}

// Validate checks all fields and collects all errors.
func (o ReviewOutcome) Validate() error {
	var errs []FieldError

	if o.CardID == uuid.Nil {
		errs = append(errs, FieldError{Field: "card_id", Message: "required"})
	}
	if !o.Grade.IsValid() {
		errs = append(errs, FieldError{Field: "grade", Message: "must be AGAIN, HARD, GOOD, or EASY"})
	}
	if o.DurationMs != nil && *o.DurationMs < 0 {
		errs = append(errs, FieldError{Field: "duration_ms", Message: "must be non-negative"})
	}
	if o.DurationMs != nil && *o.DurationMs > 600_000 {
		errs = append(errs, FieldError{Field: "duration_ms", Message: "max 10 minutes"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ReviewResult is the aggregate state returned after a review is recorded.
type ReviewResult struct {
	CardID     uuid.UUID
	State      CardState
	Due        time.Time
	ScoreDelta int
	Milestone  *string
}
