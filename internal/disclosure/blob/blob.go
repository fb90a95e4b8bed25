// Package blob is the object store gateway. It stores opaque byte blobs by
// key and knows nothing about what they contain.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var (
	ErrNotFound = errors.New("blob: not found")
)

// Object is a stored blob opened for reading. The caller must close Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// Gateway is bound to a single bucket at construction.
type Gateway interface {
	// Put stores r under key. size may be -1 when unknown.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Get opens the blob stored under key.
	Get(ctx context.Context, key string) (Object, error)

	// DeleteBatch removes keys. Missing keys are not an error. A returned
	// BatchError lists the keys that could not be removed.
	DeleteBatch(ctx context.Context, keys []string) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}

// BatchError reports the keys a DeleteBatch call failed to remove.
type BatchError struct {
	Keys []string
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("blob: delete batch failed for %d keys: %v", len(e.Keys), e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// FailedKeys returns the keys err reports as not deleted. When err carries no
// key detail every key in the batch is assumed to have failed.
func FailedKeys(err error, batch []string) []string {
	var be *BatchError
	if errors.As(err, &be) && len(be.Keys) > 0 {
		return be.Keys
	}
	return batch
}

// Chunk splits keys into batches of at most size.
func Chunk(keys []string, size int) [][]string {
	if size <= 0 {
		size = len(keys)
	}
	var out [][]string
	for len(keys) > 0 {
		n := min(size, len(keys))
		out = append(out, keys[:n:n])
		keys = keys[n:]
	}
	return out
}
