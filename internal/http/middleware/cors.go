package middleware

import "net/http"

const (
	allowOrigin  = "*"
	allowMethods = "GET, OPTIONS"
	allowHeaders = "Content-Type"
)

// CORS stamps the permissive cross-origin headers on every response and answers any OPTIONS
// request with an empty 200 before it reaches routing.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", allowHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
