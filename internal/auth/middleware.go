package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Gate verifies the Authorization header on protected routes. On success it
// hands the authenticated user id to the wrapped handler as an explicit
// parameter; it never mutates stored data or the request.
type Gate struct {
	tokens *Tokens
}

// NewGate returns a Gate verifying tokens with t.
func NewGate(t *Tokens) *Gate {
	return &Gate{tokens: t}
}

// ProtectedFunc is a handler that receives the authenticated user id.
type ProtectedFunc func(w http.ResponseWriter, r *http.Request, userID string)

// Require wraps next so it only runs with a valid bearer token. A missing,
// malformed or unverifiable token yields 401 without reaching next.
func (g *Gate) Require(next ProtectedFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			unauthorized(w)
			return
		}

		userID, err := g.tokens.Verify(raw)
		if err != nil {
			unauthorized(w)
			return
		}

		next(w, r, userID)
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "not authorized to access this route"})
}
