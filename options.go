package csvdb

import (
	"log/slog"

	"github.com/hupe1980/csvdb/blobstore"
)

type options struct {
	extension        string
	separator        rune
	workers          int
	store            blobstore.Store
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Database construction.
type Option func(*options)

// WithExtension configures the file extension for collection files.
// Default: "csv".
func WithExtension(extension string) Option {
	return func(o *options) {
		if extension != "" {
			o.extension = extension
		}
	}
}

// WithSeparator configures the field separator used in collection files.
// Default: ','.
//
// The separator is part of the on-disk format: a Database must use the same
// separator the collection was written with.
func WithSeparator(separator rune) Option {
	return func(o *options) {
		if separator != 0 {
			o.separator = separator
		}
	}
}

// WithWorkers configures the number of goroutines performing the blocking
// file work. Defaults to runtime.GOMAXPROCS(0).
//
// The pool bounds how many operations touch storage at once; it does not
// serialize access to a collection (see the package docs on concurrency).
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithStore configures the blob store backing all collections. Use this for
// in-memory (blobstore.MemoryStore), compressed (blobstore.CompressedStore)
// or object-storage (s3.Store, minio.Store) backends.
//
// When set, the base directory passed to New is ignored; prefer NewWithStore
// in that case.
func WithStore(store blobstore.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		extension:        "csv",
		separator:        ',',
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
