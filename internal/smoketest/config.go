// Package smoketest drives a running jyotish instance through one request
// per reading kind plus the validation edge cases, and reports what came
// back. It is a development tool, not part of the service.
package smoketest

import "time"

// Config holds configuration for one smoke run.
type Config struct {
	BaseURL string        // Base URL of the service
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log response bodies
}

// Stats holds run statistics.
type Stats struct {
	ScenariosRun int
	Passed       int
	Failed       int
	StartTime    time.Time
	Duration     time.Duration
}
