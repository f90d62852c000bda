// Package docshift converts dynamically shaped, ordered documents between
// JSON, YAML, XML and CSV. A document is the recursive union of scalars,
// ordered sequences and string-keyed mappings; mapping key order is
// significant and preserved by every conversion.
package docshift

import "time"

// D represents a document, defined as an ordered collection of key-value
// pairs. Each entry in the document is represented by an E. Key order is
// authoritative; a D with numeric-looking string keys is still a mapping and
// is never reinterpreted as a sequence.
type D []E

// A represents a sequence, defined as an index-ordered slice of values of any
// type. Indices are positional only and never carry meaning as keys.
type A []any

// E represents a single entry in a document. It consists of a string key and
// an associated value of any type.
type E struct {
	Key   string
	Value any
}

// isContainer reports whether v is one of the container variants. A plain
// []any is accepted as a sequence so callers building documents by hand do
// not have to convert every nested slice to A.
func isContainer(v any) bool {
	switch v.(type) {
	case D, A, []any:
		return true
	}
	return false
}

// isScalar reports whether v is one of the supported leaf kinds.
func isScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time, time.Duration:
		return true
	}
	return false
}

// asSequence normalizes the container variants of v to A. The second return
// is false when v is not a sequence.
func asSequence(v any) (A, bool) {
	switch t := v.(type) {
	case A:
		return t, true
	case []any:
		return A(t), true
	}
	return nil, false
}
