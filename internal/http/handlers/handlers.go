package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/scoreboard-relay/internal/domain/games"
	"github.com/preston-bernstein/scoreboard-relay/internal/logging"
)

const (
	msgYearWeekRequired = "year and week required"
	msgNotFound         = "not found"
	msgMethodNotAllowed = "method not allowed"

	formatParam      = "format"
	formatNormalized = "normalized"
)

// Fetcher produces the scoreboard payload for a query.
type Fetcher interface {
	Fetch(ctx context.Context, q games.Query) (games.Payload, error)
}

// Handler wires HTTP routes to the scoreboard fetcher.
type Handler struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(fetcher Fetcher, logger *slog.Logger) *Handler {
	return &Handler{fetcher: fetcher, logger: logger}
}

type healthResponse struct {
	OK bool `json:"ok"`
}

// Health reports liveness. It never touches the upstreams.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, r, nethttp.StatusOK, healthResponse{OK: true}, h.logger)
}

// Scoreboard relays one week of games from the first upstream that answers.
func (h *Handler) Scoreboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	params := r.URL.Query()
	q := games.NewQuery(params.Get("year"), params.Get("week"))
	if err := q.Validate(); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, msgYearWeekRequired, h.logger)
		return
	}
	q.Normalized = params.Get(formatParam) == formatNormalized

	// The upstream walk runs to completion even if the client goes away.
	ctx := context.WithoutCancel(r.Context())
	payload, err := h.fetcher.Fetch(ctx, q)
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "scoreboard unavailable",
			slog.String(logging.FieldYear, q.Year),
			slog.String(logging.FieldWeek, q.Week),
			logging.FieldError, err,
		)
		writeError(w, r, nethttp.StatusBadGateway, err.Error(), h.logger)
		return
	}

	writeBody(w, r, nethttp.StatusOK, payload.ContentType, payload.Body, h.logger)
}

// NotFound answers any path the router does not know.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, msgNotFound, h.logger)
}

// MethodNotAllowed answers known paths requested with an unsupported method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, msgMethodNotAllowed, h.logger)
}
