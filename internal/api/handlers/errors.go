package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error kinds carried in the "error" field of every error body
const (
	KindBadRequest      = "bad request"
	KindForbidden       = "forbidden"
	KindNotFound        = "not found"
	KindInternal        = "internal server error"
	KindTooManyRequests = "too many requests"
)

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// BadRequest writes a 400 with the "bad request" kind
func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, KindBadRequest, message)
}

// Forbidden writes a 403 with the "forbidden" kind
func Forbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, KindForbidden, message)
}

// NotFound writes a 404 with the "not found" kind
func NotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, KindNotFound, message)
}

// InternalError writes a 500. The cause must already be logged by the caller.
func InternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, KindInternal, "Encountered unexpected error")
}

// WriteJSON encodes v with the given status
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteDeleted writes the plain-text 200 body returned by every delete endpoint
func WriteDeleted(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Deleted"))
}

// DecodeJSON decodes a bounded request body into dst.
// A malformed body is reported to the client as a 400 and false is returned.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		BadRequest(w, "Invalid request body")
		return false
	}
	return true
}
