package repositories

import (
	"context"
	"io"
)

// DocumentStore keeps contract documents outside the database.
type DocumentStore interface {
	// Put writes content under key and returns the number of bytes stored.
	Put(ctx context.Context, key string, content io.Reader) (int64, error)

	// Open returns the content stored under key or apperrors.ErrNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
