package triage

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/similarity"
)

// ErrValidation wraps all input validation failures
var ErrValidation = errors.New("validation failed")

// Draft input bounds. The similarity core assumes its input is already
// validated, so the bounds are enforced here at the surface.
const (
	MinSubjectLength     = 3
	MaxSubjectLength     = 255
	MinDescriptionLength = 10
	MaxDescriptionLength = 10000
	MaxCategoryLength    = 50

	MinSeverity = 1
	MaxSeverity = 5
)

// ValidateDraft checks the subject, description, and optional category
// of a draft before it is handed to the similarity engine
func ValidateDraft(draft similarity.Draft) error {
	if n := utf8.RuneCountInString(draft.Subject); n < MinSubjectLength || n > MaxSubjectLength {
		return fmt.Errorf("%w: subject must be %d-%d characters, got %d",
			ErrValidation, MinSubjectLength, MaxSubjectLength, n)
	}
	if n := utf8.RuneCountInString(draft.Description); n < MinDescriptionLength || n > MaxDescriptionLength {
		return fmt.Errorf("%w: description must be %d-%d characters, got %d",
			ErrValidation, MinDescriptionLength, MaxDescriptionLength, n)
	}
	if draft.Category != "" {
		if utf8.RuneCountInString(draft.Category) > MaxCategoryLength {
			return fmt.Errorf("%w: category must be at most %d characters", ErrValidation, MaxCategoryLength)
		}
		if !database.TicketCategory(draft.Category).Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrValidation, draft.Category)
		}
	}
	return nil
}

// ValidateNewTicket checks the fields of a ticket being created
func ValidateNewTicket(in CreateInput) error {
	if in.Subject == "" || utf8.RuneCountInString(in.Subject) > MaxSubjectLength {
		return fmt.Errorf("%w: subject is required and must be at most %d characters",
			ErrValidation, MaxSubjectLength)
	}
	if in.Description == "" || utf8.RuneCountInString(in.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description is required and must be at most %d characters",
			ErrValidation, MaxDescriptionLength)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}
	if in.Severity < MinSeverity || in.Severity > MaxSeverity {
		return fmt.Errorf("%w: severity must be between %d and %d",
			ErrValidation, MinSeverity, MaxSeverity)
	}
	if in.CreatedBy == "" {
		return fmt.Errorf("%w: creator email is required", ErrValidation)
	}
	return nil
}
