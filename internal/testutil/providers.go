package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/scoreboard-relay/internal/domain/games"
)

// StubProvider is a ScoreboardProvider that returns a canned payload or error and records the
// queries it was asked for.
type StubProvider struct {
	NameVal string
	Payload games.Payload
	Err     error

	mu      sync.Mutex
	queries []games.Query
}

func (p *StubProvider) Name() string {
	if p.NameVal == "" {
		return "stub"
	}
	return p.NameVal
}

func (p *StubProvider) FetchScoreboard(ctx context.Context, q games.Query) (games.Payload, error) {
	_ = ctx
	p.mu.Lock()
	p.queries = append(p.queries, q)
	p.mu.Unlock()
	if p.Err != nil {
		return games.Payload{}, p.Err
	}
	return p.Payload, nil
}

// Calls returns how many times FetchScoreboard was invoked.
func (p *StubProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queries)
}

// LastQuery returns the most recent query, or the zero value when never called.
func (p *StubProvider) LastQuery() games.Query {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queries) == 0 {
		return games.Query{}
	}
	return p.queries[len(p.queries)-1]
}

// BlockingProvider waits for its context to end and returns the context error.
type BlockingProvider struct {
	NameVal string
	Started chan struct{}
}

func (p *BlockingProvider) Name() string { return p.NameVal }

func (p *BlockingProvider) FetchScoreboard(ctx context.Context, q games.Query) (games.Payload, error) {
	_ = q
	if p.Started != nil {
		close(p.Started)
	}
	<-ctx.Done()
	return games.Payload{}, ctx.Err()
}
