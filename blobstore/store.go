package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a named blob does not exist.
//
// Implementations must return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for whole-blob access to collection data.
//
// Collections are always materialized in full: a read returns the complete
// content and a write replaces it. There are no partial reads or in-place
// updates, which is what makes object stores (S3, MinIO) first-class backends.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// ReadAll returns the full content of the named blob.
	// Returns ErrNotFound if the blob does not exist.
	ReadAll(ctx context.Context, name string) ([]byte, error)

	// WriteAll replaces the named blob with data, creating it if absent.
	WriteAll(ctx context.Context, name string, data []byte) error

	// Append appends rows to the named blob. If the blob does not exist it is
	// created and header is written before rows; otherwise header is ignored.
	Append(ctx context.Context, name string, header, rows []byte) error

	// Delete removes the named blob. Deleting an absent blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs in the store, sorted.
	List(ctx context.Context) ([]string, error)
}
