package espn

import (
	"fmt"
	"iter"
	"net/url"
	"time"

	"github.com/preston-bernstein/scoreboard-relay/internal/domain/games"
	"github.com/preston-bernstein/scoreboard-relay/internal/timeutil"
)

type host int

const (
	siteHost host = iota
	webHost
)

type endpoint struct {
	host  host
	path  string
	label string
}

// Week-keyed endpoints come first, then date-keyed ones for each day of the window.
var (
	weekEndpoints = []endpoint{
		{host: siteHost, path: siteScoreboardPath, label: "site v2 week"},
		{host: siteHost, path: legacyScoreboardPath, label: "legacy v2 week"},
		{host: webHost, path: siteScoreboardPath, label: "web v2 week"},
	}
	dateEndpoints = []endpoint{
		{host: siteHost, path: siteScoreboardPath, label: "site v2 date"},
		{host: webHost, path: siteScoreboardPath, label: "web v2 date"},
	}
)

// Candidates yields (url, description) pairs in the order they should be tried. The sequence is
// finite and may be ranged over more than once.
func (c *Client) Candidates(q games.Query, now time.Time) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		weekQuery := fmt.Sprintf("week=%s&seasontype=%d&year=%s",
			url.QueryEscape(q.Week), regularSeasonType, url.QueryEscape(q.Year))
		for _, ep := range weekEndpoints {
			if !yield(c.base(ep.host)+ep.path+"?"+weekQuery, ep.label) {
				return
			}
		}

		for _, day := range timeutil.DayWindow(now, daysBefore, daysAfter) {
			date := timeutil.FormatCompactDate(day)
			for _, ep := range dateEndpoints {
				if !yield(c.base(ep.host)+ep.path+"?dates="+date, ep.label+" "+date) {
					return
				}
			}
		}
	}
}

func (c *Client) base(h host) string {
	if h == webHost {
		return c.webBaseURL
	}
	return c.siteBaseURL
}
