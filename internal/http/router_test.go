package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/scoreboard-relay/internal/domain/games"
	"github.com/preston-bernstein/scoreboard-relay/internal/http/handlers"
	"github.com/preston-bernstein/scoreboard-relay/internal/http/middleware"
	"github.com/preston-bernstein/scoreboard-relay/internal/testutil"
)

type fetcherFunc func(context.Context, games.Query) (games.Payload, error)

func (f fetcherFunc) Fetch(ctx context.Context, q games.Query) (games.Payload, error) {
	return f(ctx, q)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	fetcher := fetcherFunc(func(context.Context, games.Query) (games.Payload, error) {
		return testutil.JSONPayload("tank01", testutil.NormalizedGamesJSON), nil
	})
	return middleware.CORS(NewRouter(handlers.NewHandler(fetcher, nil)))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t)

	cases := map[string]int{
		"/health":                          http.StatusOK,
		"/health?x=1":                      http.StatusOK,
		"/scoreboard?year=2024&week=1":     http.StatusOK,
		"/scoreboard?year=2024":            http.StatusBadRequest,
		"/scoreboard/":                     http.StatusNotFound,
		"/":                                http.StatusNotFound,
		"/api/scoreboard?year=2024&week=1": http.StatusNotFound,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
		if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("route %s missing CORS header", path)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	rr := testutil.Serve(newTestRouter(t), http.MethodGet, "/unknown", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	if rr.Body.String() != `{"error":"not found"}` {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestRouterOptionsOnAnyPath(t *testing.T) {
	router := newTestRouter(t)
	for _, path := range []string{"/health", "/scoreboard", "/unknown"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		rr := testutil.ServeRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusOK)
		if rr.Body.Len() != 0 {
			t.Fatalf("expected empty OPTIONS body for %s", path)
		}
		if rr.Header().Get("Access-Control-Allow-Methods") != "GET, OPTIONS" {
			t.Fatalf("expected allow-methods on OPTIONS %s", path)
		}
	}
}

func TestRouterRejectsOtherMethods(t *testing.T) {
	rr := testutil.Serve(newTestRouter(t), http.MethodPost, "/scoreboard?year=2024&week=1", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	if rr.Header().Get("Access-Control-Allow-Headers") != "Content-Type" {
		t.Fatalf("expected CORS headers on 405")
	}
}
