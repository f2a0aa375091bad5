package csvdb

import (
	"encoding/csv"
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned for operations against a closed Database.
	ErrClosed = errors.New("database is closed")

	// ErrNoMatch is returned by FindOne when no record satisfies the predicate.
	ErrNoMatch = errors.New("no matching record")
)

// IOError indicates that a collection file could not be opened, created, read
// or written. A read against a collection that has never been written fails
// with an IOError satisfying `errors.Is(err, blobstore.ErrNotFound)`.
//
// The original underlying error can be accessed via errors.Unwrap.
type IOError struct {
	Collection string
	Op         string
	cause      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s collection %q: %v", e.Op, e.Collection, e.cause)
}

func (e *IOError) Unwrap() error { return e.cause }

// ParseError indicates that a row does not decompose into the field shape the
// record type expects (wrong field count, malformed quoting, bad field value).
// Line is the 1-based line in the collection file when known, 0 otherwise.
//
// The original underlying error can be accessed via errors.Unwrap.
type ParseError struct {
	Collection string
	Line       int
	cause      error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse collection %q line %d: %v", e.Collection, e.Line, e.cause)
	}
	return fmt.Sprintf("parse collection %q: %v", e.Collection, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

// SerializeError indicates that a record value could not be converted into
// field values, e.g. the record type is not a struct.
//
// The original underlying error can be accessed via errors.Unwrap.
type SerializeError struct {
	Collection string
	cause      error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialize record for collection %q: %v", e.Collection, e.cause)
}

func (e *SerializeError) Unwrap() error { return e.cause }

func newParseError(collection string, err error) *ParseError {
	line := 0
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		line = pe.Line
	}
	return &ParseError{Collection: collection, Line: line, cause: err}
}
