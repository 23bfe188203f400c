package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	gemini "github.com/veda-labs/jyotish/internal/adapters/genai/gemini"
	reading "github.com/veda-labs/jyotish/internal/domain/reading"
	"github.com/veda-labs/jyotish/pkg/logger"
)

// ReadingsHandler handles reading generation requests.
type ReadingsHandler struct {
	deps         Dependencies
	maxBodyBytes int64
	log          logger.Logger
}

// NewReadingsHandler creates a new readings handler.
func NewReadingsHandler(deps Dependencies, maxBodyBytes int64, log logger.Logger) *ReadingsHandler {
	return &ReadingsHandler{
		deps:         deps,
		maxBodyBytes: maxBodyBytes,
		log:          log,
	}
}

// HandlePostReading handles POST /v1/readings requests. Validation failures
// respond before any upstream call; upstream failures are mirrored verbatim.
func (h *ReadingsHandler) HandlePostReading(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_reading"
	ctx := r.Context()

	if r.Method != http.MethodPost {
		h.logError(r, op, ErrMethodNotAllowed)
		writeError(w, http.StatusBadRequest, ErrMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		h.logError(r, op, err)
		writeError(w, http.StatusBadRequest, ErrMalformedJSON)
		return
	}
	if len(body) == 0 {
		h.logError(r, op, ErrEmptyBody)
		writeError(w, http.StatusBadRequest, ErrEmptyBody)
		return
	}

	var req reading.Request
	if err := json.Unmarshal(body, &req); err != nil {
		h.logError(r, op, err)
		writeError(w, http.StatusBadRequest, ErrMalformedJSON)
		return
	}

	out, err := h.deps.Generate(ctx, req)
	if err != nil {
		h.respondError(w, r, op, err)
		return
	}

	if out.Sources == nil {
		out.Sources = []reading.Attribution{}
	}
	writeJSON(w, http.StatusOK, readingResponse{Text: out.Text, Sources: out.Sources})
}

// respondError maps pipeline errors onto the boundary contract.
func (h *ReadingsHandler) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logError(r, op, err)

	var fieldErr *reading.FieldError
	var upstreamErr *gemini.UpstreamError
	switch {
	case errors.As(err, &fieldErr), errors.Is(err, reading.ErrUnknownReadingType):
		writeError(w, http.StatusBadRequest, err)
	case errors.As(err, &upstreamErr):
		// Mirror the upstream status and error text, unmodified.
		writeError(w, upstreamErr.StatusCode, fmt.Errorf("generation API error: %s", upstreamErr.Body))
	case errors.Is(err, gemini.ErrSafetyBlocked):
		writeError(w, http.StatusInternalServerError, gemini.ErrSafetyBlocked)
	case errors.Is(err, gemini.ErrNoContent):
		writeError(w, http.StatusInternalServerError, gemini.ErrNoContent)
	default:
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}

func (h *ReadingsHandler) logError(r *http.Request, op string, err error) {
	if h.log == nil {
		return
	}
	h.log.Error(r.Context(), "request failed",
		logger.String("op", op),
		logger.String("request_id", RequestID(r.Context())),
		logger.Error(err),
	)
}
