package csvdb

import (
	"context"
	"time"
)

// The public verbs are package-level generic functions because Go methods
// cannot carry type parameters. Each verb offloads exactly one closure to the
// worker pool; the closure covers the verb's whole file sequence.
//
// Predicates are caller-supplied and run inside that closure. A predicate that
// panics is not recovered; the panic propagates out of the verb call.

// Insert appends one record to a collection. The collection file is created
// with a header row on first insert. No uniqueness check is performed:
// duplicate records are permitted, and callers who need uniqueness must
// pre-check with Find.
func Insert[T any](ctx context.Context, db *Database, collection string, record T) error {
	start := time.Now()
	_, err := run(ctx, db, func() (struct{}, error) {
		return struct{}{}, appendRows(ctx, db, collection, []T{record})
	})
	db.metrics.RecordInsert(time.Since(start), err)
	db.logger.LogInsert(ctx, collection, 1, err)
	return err
}

// InsertMany appends records to a collection as a single unit of work.
// It is equivalent to, but cheaper than, calling Insert per record: one
// offload, one file open.
func InsertMany[T any](ctx context.Context, db *Database, collection string, records []T) error {
	if len(records) == 0 {
		return nil
	}
	start := time.Now()
	_, err := run(ctx, db, func() (struct{}, error) {
		return struct{}{}, appendRows(ctx, db, collection, records)
	})
	db.metrics.RecordInsert(time.Since(start), err)
	db.logger.LogInsert(ctx, collection, len(records), err)
	return err
}

// Find returns all records for which predicate holds, in file order.
// A collection that exists but has no matching records yields an empty,
// non-nil slice. A collection that has never been written fails with an
// IOError satisfying errors.Is(err, blobstore.ErrNotFound).
func Find[T any](ctx context.Context, db *Database, collection string, predicate func(T) bool) ([]T, error) {
	start := time.Now()
	matches, err := run(ctx, db, func() ([]T, error) {
		records, err := readAll[T](ctx, db, collection)
		if err != nil {
			return nil, err
		}
		matches := make([]T, 0, len(records))
		for _, record := range records {
			if predicate(record) {
				matches = append(matches, record)
			}
		}
		return matches, nil
	})
	db.metrics.RecordFind(len(matches), time.Since(start), err)
	db.logger.LogFind(ctx, collection, len(matches), err)
	return matches, err
}

// FindOne returns the first record in file order for which predicate holds.
// Returns ErrNoMatch if the collection has no matching record.
func FindOne[T any](ctx context.Context, db *Database, collection string, predicate func(T) bool) (T, error) {
	start := time.Now()
	match, err := run(ctx, db, func() (T, error) {
		var zero T
		records, err := readAll[T](ctx, db, collection)
		if err != nil {
			return zero, err
		}
		for _, record := range records {
			if predicate(record) {
				return record, nil
			}
		}
		return zero, ErrNoMatch
	})
	matched := 0
	if err == nil {
		matched = 1
	}
	db.metrics.RecordFind(matched, time.Since(start), err)
	db.logger.LogFind(ctx, collection, matched, err)
	return match, err
}

// Count returns the number of records for which predicate holds.
func Count[T any](ctx context.Context, db *Database, collection string, predicate func(T) bool) (int, error) {
	start := time.Now()
	count, err := run(ctx, db, func() (int, error) {
		records, err := readAll[T](ctx, db, collection)
		if err != nil {
			return 0, err
		}
		count := 0
		for _, record := range records {
			if predicate(record) {
				count++
			}
		}
		return count, nil
	})
	db.metrics.RecordFind(count, time.Since(start), err)
	db.logger.LogFind(ctx, collection, count, err)
	return count, err
}

// Update replaces every record for which predicate holds with record, in
// place: order is preserved and non-matching records are untouched. All
// matches receive the same new value. If nothing matches, the collection is
// rewritten unchanged; that is a no-op, not an error.
//
// The read-replace-rewrite sequence executes as one unit of blocking work, but
// concurrent Update/Delete calls against the same collection still race
// last-writer-wins.
func Update[T any](ctx context.Context, db *Database, collection string, record T, predicate func(T) bool) error {
	start := time.Now()
	replaced, err := run(ctx, db, func() (int, error) {
		records, err := readAll[T](ctx, db, collection)
		if err != nil {
			return 0, err
		}
		replaced := 0
		for i := range records {
			if predicate(records[i]) {
				records[i] = record
				replaced++
			}
		}
		return replaced, writeAll(ctx, db, collection, records)
	})
	db.metrics.RecordUpdate(time.Since(start), err)
	db.logger.LogUpdate(ctx, collection, replaced, err)
	return err
}

// Delete removes every record for which predicate holds, preserving the order
// of the remaining records. Deleting all records leaves the file containing
// only the header row. If nothing matches, the collection is rewritten
// unchanged; that is a no-op, not an error.
func Delete[T any](ctx context.Context, db *Database, collection string, predicate func(T) bool) error {
	start := time.Now()
	removed, err := run(ctx, db, func() (int, error) {
		records, err := readAll[T](ctx, db, collection)
		if err != nil {
			return 0, err
		}
		remaining := make([]T, 0, len(records))
		for _, record := range records {
			if !predicate(record) {
				remaining = append(remaining, record)
			}
		}
		return len(records) - len(remaining), writeAll(ctx, db, collection, remaining)
	})
	db.metrics.RecordDelete(time.Since(start), err)
	db.logger.LogDelete(ctx, collection, removed, err)
	return err
}
