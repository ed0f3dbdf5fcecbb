package espn

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/scoreboard-relay/internal/domain/games"
	"github.com/preston-bernstein/scoreboard-relay/internal/logging"
	"github.com/preston-bernstein/scoreboard-relay/internal/metrics"
	"github.com/preston-bernstein/scoreboard-relay/internal/providers"
	"github.com/preston-bernstein/scoreboard-relay/internal/providers/transport"
)

// Config controls how the ESPN client reaches the public scoreboard API.
type Config struct {
	SiteBaseURL string
	WebBaseURL  string
	Transports  []transport.Attempt
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

// Client walks the ESPN scoreboard candidates and passes the first successful payload through.
type Client struct {
	siteBaseURL string
	webBaseURL  string
	transports  []transport.Attempt
	logger      *slog.Logger
	metrics     *metrics.Recorder
	now         func() time.Time
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		siteBaseURL: normalizeBaseURL(cfg.SiteBaseURL, defaultSiteBaseURL),
		webBaseURL:  normalizeBaseURL(cfg.WebBaseURL, defaultWebBaseURL),
		transports:  cfg.Transports,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		now:         defaultNow,
	}
}

func (c *Client) Name() string { return providerName }

// FetchScoreboard tries every candidate URL in order, each over every transport until one exchange
// completes. The first 2xx response is returned verbatim with its declared content type. When
// q.Normalized is set the payload is mapped to []games.Game instead. The error from the last
// failed candidate is returned when nothing succeeds.
func (c *Client) FetchScoreboard(ctx context.Context, q games.Query) (games.Payload, error) {
	var lastErr error
	for candidate, desc := range c.Candidates(q, c.now()) {
		if err := ctx.Err(); err != nil {
			return games.Payload{}, fmt.Errorf("%s: %w", providerName, err)
		}

		payload, err := c.fetchCandidate(ctx, candidate, desc, q.Normalized)
		if err == nil {
			return payload, nil
		}
		lastErr = err
		providers.LogWithProvider(ctx, c.logger, slog.LevelWarn, providerName, "candidate failed",
			slog.String(logging.FieldCandidate, desc),
			slog.String(logging.FieldURL, candidate),
			logging.FieldError, err,
		)
	}

	if lastErr == nil {
		return games.Payload{}, providers.ErrExhausted
	}
	return games.Payload{}, lastErr
}

func (c *Client) fetchCandidate(ctx context.Context, candidate, desc string, normalized bool) (games.Payload, error) {
	res, err := transport.Do(ctx, c.transports, func(ctx context.Context) (*http.Request, error) {
		return buildRequest(ctx, candidate)
	}, c.observe(ctx, desc))
	if err != nil {
		return games.Payload{}, err
	}
	if !res.OK() {
		return games.Payload{}, &providers.StatusError{Provider: providerName, StatusCode: res.StatusCode, URL: candidate}
	}

	if normalized {
		list, err := normalize(res.Body)
		if err != nil {
			return games.Payload{}, fmt.Errorf("%s: %w", providerName, err)
		}
		body, err := jsonAPI.Marshal(list)
		if err != nil {
			return games.Payload{}, fmt.Errorf("%s: encode games: %w", providerName, err)
		}
		return games.Payload{Body: body, ContentType: games.ContentTypeJSON, Source: providerName}, nil
	}

	contentType := res.Header.Get("Content-Type")
	if contentType == "" {
		contentType = games.ContentTypeJSON
	}
	providers.LogWithProvider(ctx, c.logger, slog.LevelInfo, providerName, "passing through upstream payload",
		slog.String(logging.FieldCandidate, desc),
		slog.String(logging.FieldTransport, res.Transport),
		slog.Int("bytes", len(res.Body)),
	)
	return games.Payload{Body: res.Body, ContentType: contentType, Source: providerName}, nil
}

func buildRequest(ctx context.Context, candidate string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidate, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", browserAccept)
	req.Header.Set("Referer", browserReferer)
	req.Header.Set("Origin", browserOrigin)
	return req, nil
}

func (c *Client) observe(ctx context.Context, desc string) transport.Observer {
	return func(name string, duration time.Duration, err error) {
		c.metrics.RecordProviderAttempt(providerName, name, duration, err)
		if err != nil {
			providers.LogWithProvider(ctx, c.logger, slog.LevelDebug, providerName, "transport attempt failed",
				slog.String(logging.FieldCandidate, desc),
				slog.String(logging.FieldTransport, name),
				logging.FieldError, err,
			)
		}
	}
}

func normalizeBaseURL(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}
