package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrInvalidUUID = fmt.Errorf("invalid UUID format")
	ErrInvalidDate = fmt.Errorf("invalid date format")
)

// Error collects field-specific validation messages.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, str)
		}
	}
	return returnTime.UTC(), nil
}

// validatePercentage records an error when a provided percentage is outside 0-100.
func validatePercentage(errors map[string]string, field string, value *float64) {
	if value == nil {
		return
	}
	if *value < 0 || *value > 100 {
		errors[field] = field + " must be between 0 and 100"
	}
}

// validateOptionalDate records an error when a non-empty date does not parse.
func validateOptionalDate(errors map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if _, err := ParseTime(value); err != nil {
		errors[field] = err.Error()
	}
}
