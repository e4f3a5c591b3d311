// Package blobstore stores uploaded images in an external object store and
// returns their public URLs.
package blobstore

import (
	"context"
	"errors"
	"io"
)

// ErrNotConfigured is returned by Disabled for every write
var ErrNotConfigured = errors.New("image storage is not configured")

// Store writes one object and returns the URL clients can fetch it from
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// Disabled is the Store used when no bucket is configured
type Disabled struct{}

func (Disabled) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	return "", ErrNotConfigured
}
