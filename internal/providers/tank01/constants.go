package tank01

const (
	providerName = "tank01"

	defaultHost  = "tank01-nfl-live-in-game-real-time-statistics-nfl.p.rapidapi.com"
	weekEndpoint = "/getNFLGamesForWeek"
	seasonType   = "reg"

	headerAPIKey  = "X-RapidAPI-Key"
	headerAPIHost = "X-RapidAPI-Host"
	userAgent     = "Mozilla/5.0"
)
