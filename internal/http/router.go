package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/scoreboard-relay/internal/http/handlers"
)

// NewRouter registers the relay's routes.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := chi.NewRouter()
	r.Get("/health", handler.Health)
	r.Get("/scoreboard", handler.Scoreboard)
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)
	return r
}
