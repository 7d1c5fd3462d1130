package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Validator validates a configuration model of type T.
type Validator[T any] interface {
	// Validate checks the model and returns a structured result.
	Validate(config T) ValidationResult
}

// ValidationResult aggregates the outcome of validating a document.
type ValidationResult struct {
	// Valid is true while no errors have been recorded. Warnings do not
	// affect validity.
	Valid bool
	// Errors are violations that make the document unusable.
	Errors []ValidationError
	// Warnings are findings the user should review but that do not block use.
	Warnings []ValidationError
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	// Field is the key path of the offending value (e.g. "platforms[1].name").
	Field string
	// Message describes the violation.
	Message string
	// CurrentValue is the offending value, if there is one.
	CurrentValue string
	// ExpectedValue is the value or shape that would be accepted.
	ExpectedValue string
	// FixSuggestion tells the user how to resolve the finding.
	FixSuggestion string
}

// NewValidationResult creates an empty, valid result.
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// AddError records an error and marks the result invalid.
func (r *ValidationResult) AddError(err ValidationError) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// AddWarning records a warning without affecting validity.
func (r *ValidationResult) AddWarning(warning ValidationError) {
	r.Warnings = append(r.Warnings, warning)
}

// ErrValidationFailed is the sentinel wrapped by summary errors.
var ErrValidationFailed = errors.New("validation failed")

// NewSummaryError builds the compact error returned to callers after the
// detailed findings have already been reported to the user.
func NewSummaryError(errorCount, warningCount int) error {
	if warningCount > 0 {
		return fmt.Errorf(
			"%w: %d error(s), %d warning(s)",
			ErrValidationFailed, errorCount, warningCount,
		)
	}

	return fmt.Errorf("%w: %d error(s)", ErrValidationFailed, errorCount)
}

// FormatErrorsMultiline renders all errors of a result as one message,
// one finding per line, suitable for a single notify call.
func FormatErrorsMultiline(result ValidationResult) string {
	lines := make([]string, 0, len(result.Errors))

	for _, validationError := range result.Errors {
		lines = append(lines, formatFinding(validationError))
	}

	return strings.Join(lines, "\n")
}

// FormatWarnings renders each warning of a result as its own message.
func FormatWarnings(result ValidationResult) []string {
	warnings := make([]string, 0, len(result.Warnings))

	for _, warning := range result.Warnings {
		warnings = append(warnings, formatFinding(warning))
	}

	return warnings
}

func formatFinding(finding ValidationError) string {
	var builder strings.Builder

	builder.WriteString(finding.Field)
	builder.WriteString(": ")
	builder.WriteString(finding.Message)

	if finding.CurrentValue != "" {
		builder.WriteString(fmt.Sprintf(" (got %q)", finding.CurrentValue))
	}

	if finding.FixSuggestion != "" {
		builder.WriteString(" - ")
		builder.WriteString(finding.FixSuggestion)
	}

	return builder.String()
}
