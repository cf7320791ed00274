package api

import (
	"fmt"
	"net/http"
)

// tokenAuthFilter guards endpoints with a shared bearer token. An empty token
// disables authentication.
type tokenAuthFilter struct {
	token string
}

func newTokenAuthFilter(token string) *tokenAuthFilter {
	return &tokenAuthFilter{
		token: token,
	}
}

// Decorate wraps a handler with a bearer token check.
func (t *tokenAuthFilter) Decorate(handle http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if t.token != "" &&
			r.Header.Get("Authorization") != fmt.Sprintf("Bearer %s", t.token) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write(responseEmptyJSON) // nolint: errcheck
			return
		}
		handle(w, r)
	}
}
