package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/veda-labs/jyotish/internal/smoketest"
	"github.com/veda-labs/jyotish/pkg/logger"
)

// Default configuration constants.
const (
	defaultTimeout    = 90 * time.Second
	defaultRunTimeout = 15 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8080", "Base URL of the service")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose = flag.Bool("verbose", false, "Log response bodies")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &smoketest.Config{
		BaseURL: *baseURL,
		Timeout: *timeout,
		Verbose: *verbose,
	}

	if err := smoketest.Run(ctx, config); err != nil {
		os.Stderr.WriteString("smoke run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
