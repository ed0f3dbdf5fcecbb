package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected defaults to load, got %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Deadline != 0 {
		t.Fatalf("expected no overall deadline by default, got %s", cfg.Deadline)
	}
	if cfg.PrimaryEnabled() {
		t.Fatalf("expected primary provider disabled without a key")
	}
	if cfg.Tank01.Host != defaultTank01Host {
		t.Fatalf("expected default tank01 host, got %s", cfg.Tank01.Host)
	}
	if cfg.Tank01.BaseURL != "https://"+defaultTank01Host {
		t.Fatalf("expected base url derived from host, got %s", cfg.Tank01.BaseURL)
	}
	if cfg.Tank01.Timeout != defaultTank01Timeout {
		t.Fatalf("expected tank01 timeout %s, got %s", defaultTank01Timeout, cfg.Tank01.Timeout)
	}
	if cfg.ESPN.SiteBaseURL != defaultESPNSiteURL || cfg.ESPN.WebBaseURL != defaultESPNWebURL {
		t.Fatalf("unexpected espn defaults %+v", cfg.ESPN)
	}
	if cfg.ESPN.Timeout != defaultESPNTimeout {
		t.Fatalf("expected espn timeout %s, got %s", defaultESPNTimeout, cfg.ESPN.Timeout)
	}
	if cfg.TLS.AllowInsecure {
		t.Fatalf("expected insecure tls disabled by default")
	}
	if !cfg.TLS.BundledRoots {
		t.Fatalf("expected bundled roots enabled by default")
	}
	if cfg.Log.Level != LogLevelInfo || cfg.Log.Format != LogFormatText {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("SCOREBOARD_DEADLINE", "45s")
	t.Setenv("TANK01_API_KEY", " secret-key ")
	t.Setenv("TANK01_BASE_URL", "http://example.com/api/")
	t.Setenv("ESPN_SITE_BASE_URL", "http://site.example.com/")
	t.Setenv("ESPN_TIMEOUT", "3s")
	t.Setenv("ALLOW_INSECURE_TLS", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected overrides to load, got %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Deadline != 45*time.Second {
		t.Fatalf("expected deadline 45s, got %s", cfg.Deadline)
	}
	if cfg.Tank01.APIKey != "secret-key" || !cfg.PrimaryEnabled() {
		t.Fatalf("expected trimmed api key, got %q", cfg.Tank01.APIKey)
	}
	if cfg.Tank01.BaseURL != "http://example.com/api" {
		t.Fatalf("expected base url override without trailing slash, got %s", cfg.Tank01.BaseURL)
	}
	if cfg.ESPN.SiteBaseURL != "http://site.example.com" {
		t.Fatalf("expected site base url override, got %s", cfg.ESPN.SiteBaseURL)
	}
	if cfg.ESPN.Timeout != 3*time.Second {
		t.Fatalf("expected espn timeout 3s, got %s", cfg.ESPN.Timeout)
	}
	if !cfg.TLS.AllowInsecure {
		t.Fatalf("expected insecure tls enabled")
	}
	if cfg.Log.Level != LogLevelDebug || cfg.Log.Format != LogFormatJSON {
		t.Fatalf("expected lower-cased log settings, got %+v", cfg.Log)
	}
}

func TestLoadFallsBackToRapidAPIKey(t *testing.T) {
	t.Setenv(envRapidAPIKey, "legacy")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.Tank01.APIKey != "legacy" {
		t.Fatalf("expected legacy key to be used, got %q", cfg.Tank01.APIKey)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":                "not-a-port",
		"LOG_LEVEL":           "verbose",
		"LOG_FORMAT":          "xml",
		"SCOREBOARD_DEADLINE": "not-a-duration",
		"METRICS_PORT":        "99999",
	}

	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, val)
			} else if !strings.HasPrefix(err.Error(), "config:") {
				t.Fatalf("expected wrapped config error, got %v", err)
			}
		})
	}
}

func TestMetricsPortIgnoredWhenDisabled(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("METRICS_PORT", "nope")

	if _, err := Load(); err != nil {
		t.Fatalf("expected disabled metrics to skip port validation, got %v", err)
	}
}
