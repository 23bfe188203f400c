// Package service orchestrates one reading request: validate, resolve the
// template kind, compose the prompt pair, and relay the generated result.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	cache "github.com/veda-labs/jyotish/internal/adapters/cache"
	"github.com/veda-labs/jyotish/internal/domain/prompt"
	reading "github.com/veda-labs/jyotish/internal/domain/reading"
	"github.com/veda-labs/jyotish/pkg/logger"
	"github.com/veda-labs/jyotish/pkg/metrics"
)

// Generator is the port to the generation API. The HTTP layer and tests
// never touch the concrete client.
type Generator interface {
	Generate(ctx context.Context, p prompt.Prompt) (reading.Reading, error)
}

// Service implements the reading pipeline behind the HTTP API.
type Service struct {
	generator Generator
	store     cache.Store
	log       logger.Logger
	now       func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCache enables the daily horoscope cache.
func WithCache(store cache.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithClock overrides the time source; used by tests to pin the cache day.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Service around the given generator.
func New(gen Generator, opts ...Option) *Service {
	s := &Service{
		generator: gen,
		store:     cache.Noop{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs the full pipeline for one request. Validation failures are
// returned before any upstream call is made.
func (s *Service) Generate(ctx context.Context, req reading.Request) (reading.Reading, error) {
	if err := req.Validate(); err != nil {
		return reading.Reading{}, err
	}

	kind := req.Resolve()
	metrics.RecordReadingKind(string(kind))

	p, err := prompt.Build(req)
	if err != nil {
		return reading.Reading{}, fmt.Errorf("build prompt: %w", err)
	}

	if kind == reading.KindDaily {
		return s.generateDaily(ctx, req, p)
	}
	return s.generator.Generate(ctx, p)
}

// generateDaily serves sign-level horoscopes through the cache. A horoscope
// is identical for every caller with the same sign on the same UTC day, so
// hits skip the upstream call entirely. Cache failures degrade to a normal
// generation.
func (s *Service) generateDaily(ctx context.Context, req reading.Request, p prompt.Prompt) (reading.Reading, error) {
	key := dailyKey(req.ZodiacSign, s.now().UTC())

	if cached, err := s.store.Get(ctx, key); err == nil {
		var out reading.Reading
		if err := json.Unmarshal(cached, &out); err == nil {
			metrics.RecordCacheHit()
			return out, nil
		}
		s.logWarn(ctx, "discarding undecodable cache entry", logger.String("key", key))
	}
	metrics.RecordCacheMiss()

	out, err := s.generator.Generate(ctx, p)
	if err != nil {
		return reading.Reading{}, err
	}

	if encoded, err := json.Marshal(out); err == nil {
		if err := s.store.Set(ctx, key, encoded, untilEndOfDay(s.now().UTC())); err != nil {
			s.logWarn(ctx, "daily cache write failed", logger.String("key", key), logger.Error(err))
		}
	}
	return out, nil
}

func (s *Service) logWarn(ctx context.Context, msg string, fields ...logger.Field) {
	if s.log != nil {
		s.log.Warn(ctx, msg, fields...)
	}
}

// dailyKey normalizes the sign so "Leo" and "leo" share an entry.
func dailyKey(sign string, day time.Time) string {
	return "daily:" + strings.ToLower(strings.TrimSpace(sign)) + ":" + day.Format("2006-01-02")
}

// untilEndOfDay returns the remaining lifetime of today's horoscope.
func untilEndOfDay(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return midnight.Sub(now)
}
