// Package prompt composes the (system, user) instruction pair for a reading
// request. One template per kind; templates are never combined.
package prompt

import (
	"fmt"

	reading "github.com/veda-labs/jyotish/internal/domain/reading"
)

// Prompt is the composed instruction pair sent to the generation API.
type Prompt struct {
	System string
	User   string
}

// Build selects the template for the request's resolved kind and interpolates
// the request fields into it. The request must already be validated; an
// unresolvable kind here indicates a programming error upstream.
func Build(req reading.Request) (Prompt, error) {
	kind := req.Resolve()
	switch kind {
	case reading.KindMatching:
		return Prompt{System: matchingSystem, User: matchingUser(req)}, nil
	case reading.KindHealth:
		return Prompt{System: healthSystem, User: healthUser(req)}, nil
	case reading.KindFollowUp:
		return Prompt{System: followUpSystem, User: followUpUser(req)}, nil
	case reading.KindAnnual:
		return Prompt{System: annualSystem, User: annualUser(req)}, nil
	case reading.KindDaily:
		return Prompt{System: dailySystem, User: dailyUser(req)}, nil
	case reading.KindNumerology:
		return Prompt{System: numerologySystem, User: numerologyUser(req)}, nil
	case reading.KindNatal:
		return Prompt{System: natalSystem, User: natalUser(req)}, nil
	default:
		return Prompt{}, fmt.Errorf("%w: %s", ErrNoTemplate, kind)
	}
}
