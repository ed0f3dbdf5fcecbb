package games

import "strings"

// Query identifies one week of a season. Values are forwarded to providers as-is.
type Query struct {
	Year string `json:"year"`
	Week string `json:"week"`
	// Normalized asks for fallback payloads to be mapped into []Game instead of passed through.
	Normalized bool `json:"normalized,omitempty"`
}

// NewQuery trims surrounding whitespace from year and week.
func NewQuery(year, week string) Query {
	return Query{Year: strings.TrimSpace(year), Week: strings.TrimSpace(week)}
}

// Game is the canonical game shape exposed by the relay.
type Game struct {
	Home      string  `json:"home"`
	Away      string  `json:"away"`
	Winner    *string `json:"winner"`
	Status    string  `json:"status"`
	HomeScore int     `json:"homeScore"`
	AwayScore int     `json:"awayScore"`
	Quarter   any     `json:"quarter"`
	Clock     any     `json:"clock"`
	ID        any     `json:"id"`
}

// StatusUnknown is used when an upstream record carries no status.
const StatusUnknown = "unknown"

// IsTerminalStatus reports whether a lower-cased status marks a finished game.
func IsTerminalStatus(status string) bool {
	return strings.HasPrefix(status, "final") || strings.HasPrefix(status, "completed")
}

// DecideWinner returns the winning team code for a finished game with differing scores.
// Ties and unfinished games have no winner.
func DecideWinner(status, home, away string, homeScore, awayScore int) *string {
	if !IsTerminalStatus(status) || homeScore == awayScore {
		return nil
	}
	winner := away
	if homeScore > awayScore {
		winner = home
	}
	return &winner
}

// ContentTypeJSON is the content type for normalized payloads.
const ContentTypeJSON = "application/json"

// Payload is an upstream response ready to be written back to the client.
type Payload struct {
	Body        []byte
	ContentType string
	// Source names the provider that produced the payload.
	Source string
}
