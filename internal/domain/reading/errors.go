package reading

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownReadingType = errors.New("unknown readingType")
	ErrMissingFields      = errors.New("missing required fields")
)

// FieldError reports the missing required-field set for a resolved kind.
type FieldError struct {
	Kind    Kind
	Missing []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s reading requires %s", e.Kind, strings.Join(e.Missing, ", "))
}

// Unwrap lets callers match the error class with errors.Is(err, ErrMissingFields).
func (e *FieldError) Unwrap() error { return ErrMissingFields }
