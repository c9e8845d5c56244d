package menubuilder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionNotFound is returned when a builder session is missing or has
// expired out of Redis.
var ErrSessionNotFound = errors.New("builder session not found or expired")

// ValidationError reports why a step cannot advance, carrying the names of
// the sections still missing a selection.
type ValidationError struct {
	Code     string
	Message  string
	Sections []string
}

func (e *ValidationError) Error() string {
	if len(e.Sections) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(e.Sections, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string, sections []string) error {
	return &ValidationError{
		Code:     "incompleteStep",
		Message:  msg,
		Sections: sections,
	}
}
