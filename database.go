package csvdb

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/hupe1980/csvdb/blobstore"
)

// Database is a stateless accessor over a blob store holding one delimited-text
// file per collection. It keeps no record state in memory and holds no file
// handles between calls; every operation is a fresh open-read/write-close
// cycle executed on the worker pool.
//
// Configuration is immutable after construction. A Database is safe for
// concurrent use, with the documented caveat that concurrent update/delete
// calls against the same collection race last-writer-wins (see the package
// docs).
type Database struct {
	store     blobstore.Store
	extension string
	separator rune
	pool      *workerPool
	logger    *Logger
	metrics   MetricsCollector
	closed    atomic.Bool
}

// New creates a Database storing collection files under baseDir on the local
// filesystem. The directory is created on first write.
func New(baseDir string, optFns ...Option) *Database {
	o := applyOptions(optFns)
	if o.store == nil {
		o.store = blobstore.NewLocalStore(baseDir)
	}
	return newDatabase(o)
}

// NewWithStore creates a Database over an arbitrary blob store, e.g. an
// in-memory store or an S3/MinIO-backed one.
func NewWithStore(store blobstore.Store, optFns ...Option) *Database {
	o := applyOptions(optFns)
	o.store = store
	return newDatabase(o)
}

func newDatabase(o options) *Database {
	return &Database{
		store:     o.store,
		extension: o.extension,
		separator: o.separator,
		pool:      newWorkerPool(o.workers),
		logger:    o.logger,
		metrics:   o.metricsCollector,
	}
}

// pathFor resolves a collection name to its blob name. Pure, no I/O.
func (db *Database) pathFor(collection string) string {
	return collection + "." + db.extension
}

// Close shuts down the worker pool, waiting for in-flight operations.
// Subsequent operations fail with ErrClosed. Close is idempotent.
func (db *Database) Close() error {
	if db.closed.CompareAndSwap(false, true) {
		db.pool.close()
	}
	return nil
}

// Collections returns the names of all collections known to the store,
// i.e. all blobs carrying the configured extension, sorted.
func (db *Database) Collections(ctx context.Context) ([]string, error) {
	return run(ctx, db, func() ([]string, error) {
		names, err := db.store.List(ctx)
		if err != nil {
			return nil, &IOError{Collection: "", Op: "list", cause: err}
		}
		suffix := "." + db.extension
		collections := make([]string, 0, len(names))
		for _, name := range names {
			if strings.HasSuffix(name, suffix) {
				collections = append(collections, strings.TrimSuffix(name, suffix))
			}
		}
		return collections, nil
	})
}

// Drop removes a collection and its backing file. Dropping a collection that
// does not exist is not an error.
func (db *Database) Drop(ctx context.Context, collection string) error {
	_, err := run(ctx, db, func() (struct{}, error) {
		if err := db.store.Delete(ctx, db.pathFor(collection)); err != nil {
			return struct{}{}, &IOError{Collection: collection, Op: "drop", cause: err}
		}
		return struct{}{}, nil
	})
	db.logger.LogDrop(ctx, collection, err)
	return err
}

// run offloads fn to the worker pool and parks the calling goroutine until the
// result is posted back. fn executes as one uninterrupted unit of blocking
// work; once started it is not cancelable.
func run[T any](ctx context.Context, db *Database, fn func() (T, error)) (T, error) {
	var zero T
	if db.closed.Load() {
		return zero, ErrClosed
	}

	type result struct {
		value T
		err   error
	}
	resultCh := make(chan result, 1)

	if err := db.pool.submit(ctx, func() {
		value, err := fn()
		resultCh <- result{value: value, err: err}
	}); err != nil {
		return zero, err
	}

	r := <-resultCh
	return r.value, r.err
}
