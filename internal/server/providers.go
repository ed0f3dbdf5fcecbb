package server

import (
	"log/slog"

	"github.com/preston-bernstein/scoreboard-relay/internal/config"
	"github.com/preston-bernstein/scoreboard-relay/internal/logging"
	"github.com/preston-bernstein/scoreboard-relay/internal/metrics"
	"github.com/preston-bernstein/scoreboard-relay/internal/providers"
	"github.com/preston-bernstein/scoreboard-relay/internal/providers/espn"
	"github.com/preston-bernstein/scoreboard-relay/internal/providers/tank01"
	"github.com/preston-bernstein/scoreboard-relay/internal/providers/transport"
)

// buildProviders assembles the upstream clients. primary is nil when no API key is configured.
func buildProviders(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (primary, fallback providers.ScoreboardProvider) {
	chain := transport.Chain(transport.Options{
		BundledRoots:  cfg.TLS.BundledRoots,
		AllowInsecure: cfg.TLS.AllowInsecure,
	})

	if cfg.PrimaryEnabled() {
		primary = tank01.NewClient(tank01.Config{
			BaseURL:    cfg.Tank01.BaseURL,
			Host:       cfg.Tank01.Host,
			APIKey:     cfg.Tank01.APIKey,
			Transports: transport.Build(chain, cfg.Tank01.Timeout, logger),
			Logger:     logger,
			Metrics:    recorder,
		})
	} else {
		logging.Info(logger, "no API key configured, primary provider disabled")
	}

	fallback = espn.NewClient(espn.Config{
		SiteBaseURL: cfg.ESPN.SiteBaseURL,
		WebBaseURL:  cfg.ESPN.WebBaseURL,
		Transports:  transport.Build(chain, cfg.ESPN.Timeout, logger),
		Logger:      logger,
		Metrics:     recorder,
	})
	return primary, fallback
}
