package codec

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/jszwec/csvutil"
)

// DecodeAll parses a full collection blob (header row plus data rows) into
// records of type T. Quoting and escaping follow RFC 4180 with the given
// field separator.
func DecodeAll[T any](data []byte, sep rune) ([]T, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sep

	dec, err := csvutil.NewDecoder(r)
	if err != nil {
		return nil, err
	}
	// A header that lacks fields of T is a shape mismatch, not data to ignore.
	dec.DisallowMissingColumns = true

	records := []T{}
	for {
		var rec T
		if err := dec.Decode(&rec); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeAll encodes a header row followed by one row per record. An empty
// records slice encodes to just the header row.
func EncodeAll[T any](records []T, sep rune) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = sep

	enc := csvutil.NewEncoder(w)
	enc.AutoHeader = false

	var v T
	if err := enc.EncodeHeader(&v); err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeHeaderRow encodes just the header row for the record type T.
func EncodeHeaderRow[T any](sep rune) ([]byte, error) {
	header, err := Header[T]()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = sep
	if err := w.Write(header); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeRows encodes records as data rows without a header.
func EncodeRows[T any](records []T, sep rune) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = sep

	enc := csvutil.NewEncoder(w)
	enc.AutoHeader = false

	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
