package transport

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/certifi/gocertifi"

	"github.com/preston-bernstein/scoreboard-relay/internal/logging"
)

const (
	NameBundledRoots = "bundled-roots"
	NameSystemRoots  = "system-roots"
	NameInsecure     = "insecure"
)

// Trust is one certificate verification policy and the factory that builds a client for it.
type Trust struct {
	Name string
	New  func(timeout time.Duration) (*http.Client, error)
}

// Options selects which trust configurations are offered.
type Options struct {
	BundledRoots  bool
	AllowInsecure bool
}

var bundledPool = gocertifi.CACerts

// Chain returns the trust configurations in preference order: bundled roots, platform roots, and,
// only when explicitly allowed, no verification at all.
func Chain(opts Options) []Trust {
	trusts := make([]Trust, 0, 3)
	if opts.BundledRoots {
		trusts = append(trusts, BundledRoots())
	}
	trusts = append(trusts, SystemRoots())
	if opts.AllowInsecure {
		trusts = append(trusts, Insecure())
	}
	return trusts
}

// BundledRoots verifies against the Mozilla root set shipped with the binary.
func BundledRoots() Trust {
	return Trust{
		Name: NameBundledRoots,
		New: func(timeout time.Duration) (*http.Client, error) {
			pool, err := bundledPool()
			if err != nil {
				return nil, fmt.Errorf("load bundled roots: %w", err)
			}
			return newClient(timeout, &tls.Config{MinVersion: tls.VersionTLS12, RootCAs: pool}), nil
		},
	}
}

// SystemRoots verifies against the platform trust store.
func SystemRoots() Trust {
	return Trust{
		Name: NameSystemRoots,
		New: func(timeout time.Duration) (*http.Client, error) {
			return newClient(timeout, &tls.Config{MinVersion: tls.VersionTLS12}), nil
		},
	}
}

// Insecure skips certificate verification. Development only.
func Insecure() Trust {
	return Trust{
		Name: NameInsecure,
		New: func(timeout time.Duration) (*http.Client, error) {
			return newClient(timeout, &tls.Config{InsecureSkipVerify: true}), nil
		},
	}
}

func newClient(timeout time.Duration, tlsCfg *tls.Config) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.TLSClientConfig = tlsCfg
	return &http.Client{Timeout: timeout, Transport: base}
}

// Build constructs one client per trust configuration, skipping those that are unavailable.
func Build(trusts []Trust, timeout time.Duration, logger *slog.Logger) []Attempt {
	attempts := make([]Attempt, 0, len(trusts))
	for _, trust := range trusts {
		client, err := trust.New(timeout)
		if err != nil {
			logging.Warn(logger, "transport unavailable", slog.String(logging.FieldTransport, trust.Name), logging.FieldError, err)
			continue
		}
		if trust.Name == NameInsecure {
			logging.Warn(logger, "certificate verification disabled for last-resort transport", slog.String(logging.FieldTransport, trust.Name))
		}
		attempts = append(attempts, Attempt{Name: trust.Name, Client: client})
	}
	return attempts
}
