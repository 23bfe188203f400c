package gemini

import (
	"errors"
	"fmt"
)

// Sentinel kinds for generation failures.
var (
	ErrNoContent     = errors.New("no content generated")
	ErrSafetyBlocked = errors.New("generation blocked by safety settings")
)

// UpstreamError carries a non-success response from the generation API so the
// HTTP boundary can mirror its status code and error text to the caller.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation API returned status %d: %s", e.StatusCode, e.Body)
}
