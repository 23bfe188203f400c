// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	reading "github.com/veda-labs/jyotish/internal/domain/reading"
	"github.com/veda-labs/jyotish/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Generate(ctx context.Context, req reading.Request) (reading.Reading, error)
}

// Server wires HTTP routes for the reading API.
type Server struct {
	readingsHandler *ReadingsHandler
	healthHandler   *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, maxBodyBytes int64, log logger.Logger) *Server {
	return &Server{
		readingsHandler: NewReadingsHandler(deps, maxBodyBytes, log),
		healthHandler:   NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/v1/readings", RequestIDMiddleware(MetricsMiddleware(s.readingsHandler.HandlePostReading, "readings")))
}

// readingResponse mirrors the boundary contract for a successful reading.
type readingResponse struct {
	Text    string                `json:"text"`
	Sources []reading.Attribution `json:"sources"`
}

// errorResponse is the JSON error body for every 4xx/5xx.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
