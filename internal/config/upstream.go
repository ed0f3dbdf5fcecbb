package config

import (
	"os"
	"strings"
)

// Tank01Config controls how we talk to the primary stats API on RapidAPI.
type Tank01Config struct {
	APIKey  string   `envconfig:"TANK01_API_KEY"`
	Host    string   `envconfig:"TANK01_HOST" default:"tank01-nfl-live-in-game-real-time-statistics-nfl.p.rapidapi.com"`
	BaseURL string   `envconfig:"TANK01_BASE_URL"`
	Timeout Duration `envconfig:"TANK01_TIMEOUT" default:"12s"`
}

func (t *Tank01Config) normalize() {
	t.APIKey = strings.TrimSpace(t.APIKey)
	if t.APIKey == "" {
		t.APIKey = strings.TrimSpace(os.Getenv(envRapidAPIKey))
	}
	if t.Host == "" {
		t.Host = defaultTank01Host
	}
	if t.BaseURL == "" {
		t.BaseURL = "https://" + t.Host
	}
	t.BaseURL = strings.TrimSuffix(t.BaseURL, "/")
}

// ESPNConfig controls the public scoreboard fallback.
type ESPNConfig struct {
	SiteBaseURL string   `envconfig:"ESPN_SITE_BASE_URL" default:"https://site.api.espn.com"`
	WebBaseURL  string   `envconfig:"ESPN_WEB_BASE_URL" default:"https://site.web.api.espn.com"`
	Timeout     Duration `envconfig:"ESPN_TIMEOUT" default:"10s"`
}

func (e *ESPNConfig) normalize() {
	e.SiteBaseURL = strings.TrimSuffix(e.SiteBaseURL, "/")
	e.WebBaseURL = strings.TrimSuffix(e.WebBaseURL, "/")
}

// TLSConfig controls which certificate trust configurations upstream calls may use.
type TLSConfig struct {
	BundledRoots bool `envconfig:"USE_BUNDLED_ROOTS" default:"true"`
	// AllowInsecure appends an unverified transport as the last resort. Development only.
	AllowInsecure bool `envconfig:"ALLOW_INSECURE_TLS" default:"false"`
}
