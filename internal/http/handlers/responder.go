package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"syscall"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/scoreboard-relay/internal/domain/games"
	"github.com/preston-bernstein/scoreboard-relay/internal/logging"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any, logger *slog.Logger) {
	body, err := jsonAPI.Marshal(payload)
	if err != nil {
		logging.Error(loggerFromContext(r, logger), "failed to encode response", err)
		status = http.StatusInternalServerError
		body = []byte(`{"error":"internal error"}`)
	}
	writeBody(w, r, status, games.ContentTypeJSON, body, logger)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, r, status, errorResponse{Error: message}, logger)
}

// writeBody sends a complete response. A client that hung up mid-write is not an error.
func writeBody(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte, logger *slog.Logger) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log := loggerFromContext(r, logger)
		if isClientGone(err) {
			logging.Debug(log, "client disconnected before response was written", logging.FieldError, err)
			return
		}
		logging.Warn(log, "failed to write response", logging.FieldError, err)
	}
}

func isClientGone(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
