// Package blobstore provides storage abstraction for csvdb's collection files.
//
// Store is the interface for reading and writing collection blobs as whole
// units. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with atomic whole-file replacement
//   - MemoryStore: In-memory map, for tests and ephemeral data
//   - CompressedStore: Middleware adding zstd or lz4 whole-blob compression
//   - s3.Store: Amazon S3 whole-object access
//   - minio.Store: MinIO and S3-compatible object storage
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    ReadAll(ctx, name) ([]byte, error)       // Full content, ErrNotFound if absent
//	    WriteAll(ctx, name, data) error          // Replace
//	    Append(ctx, name, header, rows) error    // Append, header only on create
//	    Delete(ctx, name) error
//	    List(ctx) ([]string, error)
//	}
//
// Only LocalStore offers a true append: other backends implement Append as a
// read-modify-write of the whole blob, so concurrent appends against them can
// lose rows to each other.
package blobstore
