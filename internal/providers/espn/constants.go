package espn

import "time"

const (
	providerName = "espn"

	defaultSiteBaseURL = "https://site.api.espn.com"
	defaultWebBaseURL  = "https://site.web.api.espn.com"

	siteScoreboardPath   = "/apis/site/v2/sports/football/nfl/scoreboard"
	legacyScoreboardPath = "/apis/v2/sports/football/nfl/scoreboard"

	// regularSeasonType is ESPN's seasontype for the regular season.
	regularSeasonType = 2

	daysBefore = 3
	daysAfter  = 3

	browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	browserAccept    = "application/json, text/plain, */*"
	browserReferer   = "https://www.espn.com/"
	browserOrigin    = "https://www.espn.com"
)

var defaultNow = time.Now
