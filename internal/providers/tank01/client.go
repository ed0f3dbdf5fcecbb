package tank01

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/scoreboard-relay/internal/domain/games"
	"github.com/preston-bernstein/scoreboard-relay/internal/logging"
	"github.com/preston-bernstein/scoreboard-relay/internal/metrics"
	"github.com/preston-bernstein/scoreboard-relay/internal/providers"
	"github.com/preston-bernstein/scoreboard-relay/internal/providers/transport"
)

// Config controls how the Tank01 client reaches the upstream API.
type Config struct {
	BaseURL    string
	Host       string
	APIKey     string
	Transports []transport.Attempt
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client fetches a week of games from the Tank01 NFL API and normalizes them.
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	transports []transport.Attempt
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// NewClient constructs a Tank01 client with the provided configuration.
func NewClient(cfg Config) *Client {
	host := cfg.Host
	if host == "" {
		host = defaultHost
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://" + host
	}
	return &Client{
		baseURL:    baseURL,
		host:       host,
		apiKey:     cfg.APIKey,
		transports: cfg.Transports,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}
}

func (c *Client) Name() string { return providerName }

// FetchScoreboard makes one request per transport-trust configuration until an exchange completes,
// then normalizes the games it returns. A non-2xx status, an undecodable body or a payload without
// usable games is an error.
func (c *Client) FetchScoreboard(ctx context.Context, q games.Query) (games.Payload, error) {
	res, err := transport.Do(ctx, c.transports, func(ctx context.Context) (*http.Request, error) {
		return c.buildRequest(ctx, q)
	}, c.observe(ctx))
	if err != nil {
		return games.Payload{}, fmt.Errorf("%s: %w", providerName, err)
	}
	if !res.OK() {
		return games.Payload{}, &providers.StatusError{Provider: providerName, StatusCode: res.StatusCode, URL: c.weekURL(q)}
	}

	records, err := decodeRecords(res.Body)
	if err != nil {
		return games.Payload{}, fmt.Errorf("%s: decode payload: %w", providerName, err)
	}
	normalized := mapGames(records)
	if len(normalized) == 0 {
		return games.Payload{}, fmt.Errorf("%s: %w", providerName, providers.ErrNoGames)
	}

	body, err := jsonAPI.Marshal(normalized)
	if err != nil {
		return games.Payload{}, fmt.Errorf("%s: encode games: %w", providerName, err)
	}

	providers.LogWithProvider(ctx, c.logger, slog.LevelInfo, providerName, "normalized games",
		slog.Int(logging.FieldCount, len(normalized)),
		slog.Int("skipped", len(records)-len(normalized)),
		slog.String(logging.FieldTransport, res.Transport),
	)
	return games.Payload{Body: body, ContentType: games.ContentTypeJSON, Source: providerName}, nil
}

func (c *Client) buildRequest(ctx context.Context, q games.Query) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.weekURL(q), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAPIHost, c.host)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", games.ContentTypeJSON)
	return req, nil
}

func (c *Client) weekURL(q games.Query) string {
	return fmt.Sprintf("%s%s?season=%s&week=%s&seasonType=%s",
		c.baseURL, weekEndpoint, url.QueryEscape(q.Year), url.QueryEscape(q.Week), seasonType)
}

func (c *Client) observe(ctx context.Context) transport.Observer {
	return func(name string, duration time.Duration, err error) {
		c.metrics.RecordProviderAttempt(providerName, name, duration, err)
		if err != nil {
			providers.LogWithProvider(ctx, c.logger, slog.LevelWarn, providerName, "transport attempt failed",
				slog.String(logging.FieldTransport, name), logging.FieldError, err)
		}
	}
}
