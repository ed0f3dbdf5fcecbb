package testutil

import "github.com/preston-bernstein/scoreboard-relay/internal/domain/games"

// JSONPayload builds a payload with the given body, application/json and source.
func JSONPayload(source, body string) games.Payload {
	return games.Payload{Body: []byte(body), ContentType: games.ContentTypeJSON, Source: source}
}

// NormalizedGamesJSON is a small normalized scoreboard used across handler and service tests.
const NormalizedGamesJSON = `[{"home":"KC","away":"BAL","winner":"KC","status":"final","homeScore":27,"awayScore":20,"quarter":"4","clock":"0:00","id":"20240905_BAL@KC"}]`
