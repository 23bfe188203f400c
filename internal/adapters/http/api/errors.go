package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrMethodNotAllowed = errors.New("only POST is accepted")
	ErrEmptyBody        = errors.New("request body must not be empty")
	ErrMalformedJSON    = errors.New("request body is not valid JSON")
)
