// Package storage persists uploaded media files.
package storage

import (
	"context"
	"io"
)

// Storage saves and removes files addressed by a slash separated path
// relative to the storage root.
type Storage interface {
	Save(ctx context.Context, path string, r io.Reader) error
	Delete(ctx context.Context, path string) error
	URL(path string) string
}
