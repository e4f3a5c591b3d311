package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"
)

// UsernameHeader carries the caller's identity. It is trusted as-is; the
// gateway in front of the API is responsible for authenticating it.
const UsernameHeader = "username"

// MaxUsernameLength matches the width of every author/voter/reporter column
const MaxUsernameLength = 100

// Context keys for storing caller information
type contextKey string

const UsernameKey contextKey = "username"

// RequireIdentity rejects requests without a username header, or with one
// longer than MaxUsernameLength characters, with 400 and stores the username
// in the request context otherwise.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := strings.TrimSpace(r.Header.Get(UsernameHeader))
		if username == "" {
			writeMiddlewareError(w, http.StatusBadRequest, "bad request", "Missing username header")
			return
		}
		if utf8.RuneCountInString(username) > MaxUsernameLength {
			writeMiddlewareError(w, http.StatusBadRequest, "bad request", "Username header is too long")
			return
		}

		ctx := context.WithValue(r.Context(), UsernameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsername extracts the caller's username from the request context.
// Returns empty string if RequireIdentity did not run.
func GetUsername(r *http.Request) string {
	username, _ := r.Context().Value(UsernameKey).(string)
	return username
}

func writeMiddlewareError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   kind,
		"message": message,
	})
}
