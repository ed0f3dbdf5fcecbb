package tank01

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// jsonAPI keeps upstream numbers as json.Number so ids and scores survive untouched.
var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Key aliases observed in Tank01 week payloads, in lookup order.
var (
	homeKeys      = []string{"homeTeam", "home", "homeTeamAbbr"}
	awayKeys      = []string{"awayTeam", "away", "awayTeamAbbr"}
	homeScoreKeys = []string{"homeScoreTotal", "homeScore"}
	awayScoreKeys = []string{"awayScoreTotal", "awayScore"}
	statusKeys    = []string{"gameStatus", "status"}
	quarterKeys   = []string{"quarter", "qtr"}
	clockKeys     = []string{"gameClock", "clock"}
	idKeys        = []string{"gameID", "gameId", "id"}
	envelopeKeys  = []string{"body", "games"}
)

// record is one loosely typed game object from the upstream payload.
type record map[string]any

// first returns the value of the first key holding a present value, or nil.
func (r record) first(keys ...string) any {
	for _, key := range keys {
		if v, ok := r[key]; ok && present(v) {
			return v
		}
	}
	return nil
}

// present reports whether v carries data: nil, empty strings, false, zero numbers and empty
// containers count as absent.
func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// decodeRecords extracts the game list from a week payload. The list may sit under "body" or
// "games", or be the top-level value. Non-object entries are dropped.
func decodeRecords(raw []byte) ([]record, error) {
	var data any
	if err := jsonAPI.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	var list []any
	switch val := data.(type) {
	case []any:
		list = val
	case map[string]any:
		if items, ok := record(val).first(envelopeKeys...).([]any); ok {
			list = items
		}
	}

	records := make([]record, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			records = append(records, record(obj))
		}
	}
	return records, nil
}
