package tank01

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/scoreboard-relay/internal/domain/games"
)

func mapGames(records []record) []games.Game {
	out := make([]games.Game, 0, len(records))
	for _, r := range records {
		if g, ok := mapGame(r); ok {
			out = append(out, g)
		}
	}
	return out
}

// mapGame normalizes one record. Records without both team identifiers are skipped.
func mapGame(r record) (games.Game, bool) {
	home := strings.ToUpper(toString(r.first(homeKeys...)))
	away := strings.ToUpper(toString(r.first(awayKeys...)))
	if home == "" || away == "" {
		return games.Game{}, false
	}

	homeScore, homeOK := parseScore(r.first(homeScoreKeys...))
	awayScore, awayOK := parseScore(r.first(awayScoreKeys...))

	status := strings.ToLower(toString(r.first(statusKeys...)))
	if status == "" {
		status = games.StatusUnknown
	}

	var winner *string
	if homeOK && awayOK {
		winner = games.DecideWinner(status, home, away, homeScore, awayScore)
	}

	return games.Game{
		Home:      home,
		Away:      away,
		Winner:    winner,
		Status:    status,
		HomeScore: homeScore,
		AwayScore: awayScore,
		Quarter:   r.first(quarterKeys...),
		Clock:     r.first(clockKeys...),
		ID:        r.first(idKeys...),
	}, true
}

// parseScore accepts plain non-negative integers, either as JSON numbers or digit strings.
// A missing score is 0 and parsed; anything else is 0 and reported as unparsed.
func parseScore(v any) (int, bool) {
	if v == nil {
		return 0, true
	}
	raw := toString(v)
	if !isDigits(raw) {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
