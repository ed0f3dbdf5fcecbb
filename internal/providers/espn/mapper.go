package espn

import (
	"errors"
	"strconv"
	"strings"

	"github.com/preston-bernstein/scoreboard-relay/internal/domain/games"
)

var errNoEvents = errors.New("payload has no events list")

// normalize maps an ESPN scoreboard into canonical games. An events list that is present but empty
// yields an empty slice; a payload without one is an error.
func normalize(raw []byte) ([]games.Game, error) {
	var resp scoreboardResponse
	if err := jsonAPI.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	if resp.Events == nil {
		return nil, errNoEvents
	}

	out := make([]games.Game, 0, len(*resp.Events))
	for _, ev := range *resp.Events {
		if g, ok := mapEvent(ev); ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func mapEvent(ev event) (games.Game, bool) {
	if len(ev.Competitions) == 0 {
		return games.Game{}, false
	}
	comp := ev.Competitions[0]
	home, homeOK := findSide(comp.Competitors, "home")
	away, awayOK := findSide(comp.Competitors, "away")
	if !homeOK || !awayOK || home.Team.Abbreviation == "" || away.Team.Abbreviation == "" {
		return games.Game{}, false
	}

	homeCode := strings.ToUpper(home.Team.Abbreviation)
	awayCode := strings.ToUpper(away.Team.Abbreviation)
	homeScore, hOK := parseScore(home.Score)
	awayScore, aOK := parseScore(away.Score)
	st := statusOf(comp.Status)

	var winner *string
	if hOK && aOK {
		winner = games.DecideWinner(st, homeCode, awayCode, homeScore, awayScore)
	}

	g := games.Game{
		Home:      homeCode,
		Away:      awayCode,
		Winner:    winner,
		Status:    st,
		HomeScore: homeScore,
		AwayScore: awayScore,
	}
	if comp.Status.Period != 0 {
		g.Quarter = comp.Status.Period
	}
	if comp.Status.DisplayClock != "" {
		g.Clock = comp.Status.DisplayClock
	}
	if ev.ID != "" {
		g.ID = ev.ID
	}
	return g, true
}

func findSide(competitors []competitor, side string) (competitor, bool) {
	for _, c := range competitors {
		if c.HomeAway == side {
			return c, true
		}
	}
	return competitor{}, false
}

// statusOf prefers the human description ("Final", "Final/OT") so the terminal-status rule applies,
// then the coarse state ("pre", "in", "post").
func statusOf(s status) string {
	st := strings.ToLower(strings.TrimSpace(s.Type.Description))
	if st == "" {
		st = strings.ToLower(strings.TrimSpace(s.Type.State))
	}
	if st == "" {
		return games.StatusUnknown
	}
	return st
}

// parseScore accepts a score encoded as a digit string or a JSON integer. Missing scores are 0.
func parseScore(raw []byte) (int, bool) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return 0, true
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	if text == "" {
		return 0, true
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 || strings.HasPrefix(text, "+") {
		return 0, false
	}
	return n, true
}
