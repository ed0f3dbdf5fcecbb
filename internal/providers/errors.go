package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrNoGames is returned when an upstream payload yields no well-formed game records.
	ErrNoGames = errors.New("no games in upstream payload")
	// ErrExhausted is returned when every candidate was tried without success and no error was recorded.
	ErrExhausted = errors.New("unable to fetch scoreboard")
)

// StatusError captures a completed exchange whose HTTP status was not 2xx.
type StatusError struct {
	Provider   string
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s: upstream returned status %d", e.Provider, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
