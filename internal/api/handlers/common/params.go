package common

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ErrInvalidParam is returned for path or query values that are not positive integers
var ErrInvalidParam = errors.New("invalid parameter")

// PathID parses the chi URL parameter name as a positive int64
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidParam
	}
	return id, nil
}

// PageParam reads ?page, defaulting to 1. Values below 1 are clamped.
func PageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidParam
	}
	if page < 1 {
		page = 1
	}
	return page, nil
}

// OptionalInt64 reads an optional positive query parameter
func OptionalInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		return nil, ErrInvalidParam
	}
	return &v, nil
}

// OptionalInt reads an optional integer query parameter, returning def when absent
func OptionalInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidParam
	}
	return v, nil
}
