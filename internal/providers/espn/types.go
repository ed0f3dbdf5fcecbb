package espn

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type scoreboardResponse struct {
	Events *[]event `json:"events"`
}

type event struct {
	ID           string        `json:"id"`
	Competitions []competition `json:"competitions"`
}

type competition struct {
	Competitors []competitor `json:"competitors"`
	Status      status       `json:"status"`
}

type competitor struct {
	HomeAway string          `json:"homeAway"`
	Winner   bool            `json:"winner"`
	Score    json.RawMessage `json:"score"`
	Team     team            `json:"team"`
}

type team struct {
	Abbreviation string `json:"abbreviation"`
}

type status struct {
	Period       int        `json:"period"`
	DisplayClock string     `json:"displayClock"`
	Type         statusType `json:"type"`
}

type statusType struct {
	State       string `json:"state"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
