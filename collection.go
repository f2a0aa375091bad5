package csvdb

import (
	"context"

	"github.com/hupe1980/csvdb/codec"
)

// Collection primitives. These run inside the offloaded closure of a public
// verb and always materialize the whole collection: readAll loads and parses
// every row, writeAll rewrites the complete file. Only appendRows avoids
// touching existing content, which is what keeps inserts O(1).

func readAll[T any](ctx context.Context, db *Database, collection string) ([]T, error) {
	data, err := db.store.ReadAll(ctx, db.pathFor(collection))
	if err != nil {
		return nil, &IOError{Collection: collection, Op: "read", cause: err}
	}
	records, err := codec.DecodeAll[T](data, db.separator)
	if err != nil {
		return nil, newParseError(collection, err)
	}
	return records, nil
}

func writeAll[T any](ctx context.Context, db *Database, collection string, records []T) error {
	data, err := codec.EncodeAll(records, db.separator)
	if err != nil {
		return &SerializeError{Collection: collection, cause: err}
	}
	if err := db.store.WriteAll(ctx, db.pathFor(collection), data); err != nil {
		return &IOError{Collection: collection, Op: "write", cause: err}
	}
	return nil
}

func appendRows[T any](ctx context.Context, db *Database, collection string, records []T) error {
	header, err := codec.EncodeHeaderRow[T](db.separator)
	if err != nil {
		return &SerializeError{Collection: collection, cause: err}
	}
	rows, err := codec.EncodeRows(records, db.separator)
	if err != nil {
		return &SerializeError{Collection: collection, cause: err}
	}
	if err := db.store.Append(ctx, db.pathFor(collection), header, rows); err != nil {
		return &IOError{Collection: collection, Op: "append", cause: err}
	}
	return nil
}
