// Package csvdb provides a minimal embedded document store that persists
// collections of typed records as delimited-text files.
//
// Each collection is exactly one file: the first row names the record type's
// fields, every following row holds one record. Records are plain Go structs,
// mapped to rows via the `csv` struct tag. There is no schema registry, no
// identity concept and no index; "identity" for update/delete purposes is
// whatever predicate the caller supplies.
//
// # Quick Start
//
//	type User struct {
//	    ID   int    `csv:"id"`
//	    Name string `csv:"name"`
//	    Age  int    `csv:"age"`
//	}
//
//	db := csvdb.New("./data")
//	defer db.Close()
//
//	ctx := context.Background()
//
//	// Creates ./data/users.csv with a header row on first insert.
//	err := csvdb.Insert(ctx, db, "users", User{ID: 1, Name: "First", Age: 20})
//
//	adults, err := csvdb.Find(ctx, db, "users", func(u User) bool { return u.Age >= 18 })
//
//	err = csvdb.Update(ctx, db, "users", User{ID: 1, Name: "First", Age: 21},
//	    func(u User) bool { return u.ID == 1 })
//
//	err = csvdb.Delete(ctx, db, "users", func(u User) bool { return u.ID == 1 })
//
// # Storage Backends
//
// Collections live in a blobstore.Store. The default is the local filesystem;
// in-memory, zstd/lz4-compressed, S3 and MinIO backends ship in blobstore and
// its subpackages:
//
//	db := csvdb.NewWithStore(s3.NewStore(client, "my-bucket", "csvdb/"))
//
// # Execution Model
//
// Every verb is synchronous for the caller but runs its blocking file work on
// a shared worker pool: the calling goroutine parks on a result channel while
// a worker performs the whole open-read(-modify-write)-close sequence as one
// uninterrupted unit. Cancellation via context applies only until the work is
// accepted by the pool; started I/O always runs to completion.
//
// # Concurrency Semantics
//
// csvdb is a single-writer-oriented store. There is no locking, transaction or
// optimistic-concurrency check:
//
//   - Concurrent inserts into the same collection are safe on the local
//     filesystem backend (appends do not read existing content).
//   - Concurrent update/delete calls against the same collection race: both
//     read the pre-mutation content and the last write wins, silently
//     discarding the other's effect.
//   - An insert that lands between another call's read and rewrite is lost.
//
// Hosts that need stronger guarantees must serialize mutating calls
// themselves.
//
// # Errors
//
// Every failure surfaces as a typed error: *IOError for file access problems
// (including reads of collections that were never written, which are distinct
// from empty collections), *ParseError for rows that do not match the record
// type's shape, *SerializeError for records that cannot be converted to rows.
// The core never retries and never swallows an error.
package csvdb
