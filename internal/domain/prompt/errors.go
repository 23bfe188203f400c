package prompt

import "errors"

// Sentinel kinds for prompt composition errors.
var (
	ErrNoTemplate = errors.New("no template for reading kind")
)
