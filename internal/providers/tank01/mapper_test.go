package tank01

import (
	"encoding/json"
	"testing"
)

func TestMapGameWinnerRules(t *testing.T) {
	cases := []struct {
		name   string
		rec    record
		winner string
	}{
		{"home wins", record{"home": "KC", "away": "BUF", "homeScoreTotal": "24", "awayScoreTotal": "17", "gameStatus": "final"}, "KC"},
		{"away wins", record{"home": "KC", "away": "BUF", "homeScoreTotal": "20", "awayScoreTotal": "27", "gameStatus": "Final/OT"}, "BUF"},
		{"tie", record{"home": "KC", "away": "BUF", "homeScoreTotal": "24", "awayScoreTotal": "24", "gameStatus": "final"}, ""},
		{"live", record{"home": "KC", "away": "BUF", "homeScoreTotal": "24", "awayScoreTotal": "17", "gameStatus": "Live - In Progress"}, ""},
		{"unparseable score", record{"home": "KC", "away": "BUF", "homeScoreTotal": "24", "awayScoreTotal": "n/a", "gameStatus": "final"}, ""},
	}

	for _, tc := range cases {
		g, ok := mapGame(tc.rec)
		if !ok {
			t.Fatalf("%s: expected record to map", tc.name)
		}
		if tc.winner == "" {
			if g.Winner != nil {
				t.Fatalf("%s: expected no winner, got %s", tc.name, *g.Winner)
			}
			continue
		}
		if g.Winner == nil || *g.Winner != tc.winner {
			t.Fatalf("%s: expected winner %s, got %v", tc.name, tc.winner, g.Winner)
		}
	}
}

func TestMapGameSkipsMissingTeams(t *testing.T) {
	if _, ok := mapGame(record{"homeScoreTotal": "3"}); ok {
		t.Fatalf("expected record without teams to be skipped")
	}
	if _, ok := mapGame(record{"home": "KC"}); ok {
		t.Fatalf("expected record without away team to be skipped")
	}
}

func TestMapGameKeyPrecedenceAndDefaults(t *testing.T) {
	g, ok := mapGame(record{
		"homeTeamAbbr":   "sf",
		"away":           "sea",
		"homeScoreTotal": json.Number("0"),
		"homeScore":      "21",
		"status":         "",
		"qtr":            json.Number("3"),
		"clock":          "12:04",
		"id":             json.Number("401671"),
	})
	if !ok {
		t.Fatalf("expected record to map")
	}
	if g.Home != "SF" || g.Away != "SEA" {
		t.Fatalf("expected upper-cased teams, got %s/%s", g.Home, g.Away)
	}
	if g.HomeScore != 21 || g.AwayScore != 0 {
		t.Fatalf("expected zero total to fall through to homeScore, got %d-%d", g.HomeScore, g.AwayScore)
	}
	if g.Status != "unknown" {
		t.Fatalf("expected unknown status, got %s", g.Status)
	}
	if g.Quarter != json.Number("3") || g.Clock != "12:04" || g.ID != json.Number("401671") {
		t.Fatalf("unexpected extras %+v", g)
	}
}

func TestParseScore(t *testing.T) {
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{nil, 0, true},
		{"24", 24, true},
		{json.Number("17"), 17, true},
		{json.Number("17.5"), 0, false},
		{"-3", 0, false},
		{" 7", 0, false},
		{true, 0, false},
	}
	for _, tc := range cases {
		got, ok := parseScore(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseScore(%v) = %d,%v want %d,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDecodeRecordsEnvelopes(t *testing.T) {
	cases := map[string]int{
		`{"body":[{"home":"A"},{"home":"B"}]}`: 2,
		`{"body":[],"games":[{"home":"A"}]}`:   1,
		`[{"home":"A"},1,"x"]`:                 1,
		`{"statusCode":500,"error":"down"}`:    0,
		`"just a string"`:                      0,
	}
	for raw, want := range cases {
		recs, err := decodeRecords([]byte(raw))
		if err != nil {
			t.Fatalf("decodeRecords(%s) unexpected error %v", raw, err)
		}
		if len(recs) != want {
			t.Fatalf("decodeRecords(%s) = %d records, want %d", raw, len(recs), want)
		}
	}
	if _, err := decodeRecords([]byte(`{`)); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}
