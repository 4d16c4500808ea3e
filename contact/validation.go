package contact

import (
	"strings"

	liberrors "github.com/vortex-fintech/ingest-lib/errors"
)

// Requirement names used in validation reporting.
const (
	RequirementName          = "name"
	RequirementContactMethod = "contact_method"
)

// ValidationError reports which validity requirement a record failed:
// a derivable name part, a derivable contact method, or both.
type ValidationError struct {
	MissingName          bool
	MissingContactMethod bool
}

func (e *ValidationError) Error() string {
	return "contact: validation failed: missing " + strings.Join(e.Missing(), ", ")
}

// Missing lists the unmet requirements.
func (e *ValidationError) Missing() []string {
	var out []string
	if e.MissingName {
		out = append(out, RequirementName)
	}
	if e.MissingContactMethod {
		out = append(out, RequirementContactMethod)
	}
	return out
}

// Response converts the error into the house ErrorResponse with one field
// violation per unmet requirement.
func (e *ValidationError) Response() liberrors.ErrorResponse {
	violations := make([]liberrors.FieldViolation, 0, 2)
	if e.MissingName {
		violations = append(violations, liberrors.FieldViolation{
			Field:       RequirementName,
			Reason:      "missing_name",
			Description: "no first_name, last_name or splittable full_name",
		})
	}
	if e.MissingContactMethod {
		violations = append(violations, liberrors.FieldViolation{
			Field:       RequirementContactMethod,
			Reason:      "missing_contact_method",
			Description: "no email or phone found in any field",
		})
	}
	return liberrors.ValidationViolations(violations)
}

// IsValidationError reports whether err is a record validation failure.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
