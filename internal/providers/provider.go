package providers

import (
	"context"

	"github.com/preston-bernstein/scoreboard-relay/internal/domain/games"
)

// ScoreboardProvider fetches one week of scoreboard data from an upstream API.
// Implementations return a payload ready to be written to the client, or an error when the
// upstream could not produce one.
type ScoreboardProvider interface {
	Name() string
	FetchScoreboard(ctx context.Context, q games.Query) (games.Payload, error)
}
