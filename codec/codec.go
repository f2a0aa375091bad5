// Package codec maps typed records to and from delimited-text rows.
//
// A record is any struct whose exported fields can be represented as string
// field values. Field names and order are taken from the struct's own shape;
// the `csv` struct tag overrides a field's name the same way `json` tags do:
//
//	type User struct {
//	    ID   int    `csv:"id"`
//	    Name string `csv:"name"`
//	}
//
// The first row of every encoded collection is the header row naming the
// fields; every following row holds one record's values in header order.
// Changing a record type therefore changes the on-disk shape: data written
// with one shape does not decode with an incompatible one.
package codec

import "github.com/jszwec/csvutil"

// tag is the struct tag consulted for field names.
const tag = "csv"

// Header returns the ordered field names of the record type T.
func Header[T any]() ([]string, error) {
	var v T
	return csvutil.Header(&v, tag)
}
