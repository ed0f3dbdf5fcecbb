package scoreboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/scoreboard-relay/internal/domain/games"
	"github.com/preston-bernstein/scoreboard-relay/internal/logging"
	"github.com/preston-bernstein/scoreboard-relay/internal/metrics"
	"github.com/preston-bernstein/scoreboard-relay/internal/providers"
)

// Service coordinates a scoreboard fetch across the primary and fallback providers.
type Service struct {
	primary  providers.ScoreboardProvider
	fallback providers.ScoreboardProvider
	deadline time.Duration
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// Option customizes a Service.
type Option func(*Service)

// WithDeadline bounds a whole fetch. Zero leaves it unbounded.
func WithDeadline(d time.Duration) Option {
	return func(s *Service) { s.deadline = d }
}

// WithLogger sets the fallback logger used when the request context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the recorder for fetch outcomes.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = recorder }
}

// NewService constructs a Service. primary may be nil when no credential is configured.
func NewService(primary, fallback providers.ScoreboardProvider, opts ...Option) *Service {
	s := &Service{primary: primary, fallback: fallback}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch returns the scoreboard for q. The primary is tried first when configured and any failure
// there falls through to the fallback, whose error is returned when it fails too.
func (s *Service) Fetch(ctx context.Context, q games.Query) (games.Payload, error) {
	if s.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.deadline)
		defer cancel()
	}

	start := time.Now()
	payload, err := s.fetch(ctx, q)
	s.metrics.RecordFetch(payload.Source, time.Since(start), err)
	return payload, err
}

func (s *Service) fetch(ctx context.Context, q games.Query) (games.Payload, error) {
	logger := logging.FromContext(ctx, s.logger)
	attrs := []any{slog.String(logging.FieldYear, q.Year), slog.String(logging.FieldWeek, q.Week)}

	if s.primary != nil {
		payload, err := s.primary.FetchScoreboard(ctx, q)
		if err == nil {
			logging.Info(logger, "scoreboard served by primary", append(attrs, slog.String(logging.FieldProvider, s.primary.Name()))...)
			return payload, nil
		}
		logging.Warn(logger, "primary provider failed, falling back",
			append(attrs, slog.String(logging.FieldProvider, s.primary.Name()), logging.FieldError, err)...)
	}

	if s.fallback == nil {
		return games.Payload{}, providers.ErrExhausted
	}
	payload, err := s.fallback.FetchScoreboard(ctx, q)
	if err != nil {
		logging.Error(logger, "scoreboard fetch failed", err,
			append(attrs, slog.String(logging.FieldProvider, s.fallback.Name()))...)
		return games.Payload{}, err
	}
	logging.Info(logger, "scoreboard served by fallback", append(attrs, slog.String(logging.FieldProvider, s.fallback.Name()))...)
	return payload, nil
}
