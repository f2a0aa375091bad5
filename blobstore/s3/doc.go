// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil { ... }
//
//	store := s3.NewStore(s3.NewFromConfig(cfg), "my-bucket", "csvdb/")
//	db := csvdb.NewWithStore(store)
//
// # Features
//
//   - Whole-object reads and writes (atomic replacement)
//   - Multipart uploads for large collections
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//
// Append is implemented as get-concat-put; see blobstore.Store for the
// concurrency implications.
package s3
