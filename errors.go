package docshift

import "errors"

var (
	// ErrMalformedDocument reports an input that is not a valid document:
	// a cycle, or a value that is neither a supported scalar nor a
	// container where one was required.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrEncoding reports a scalar that cannot be represented in the target
	// text encoding, such as a string that is not valid UTF-8.
	ErrEncoding = errors.New("scalar not representable in target encoding")

	// ErrRecursionLimit reports a document nested deeper than the
	// configured bound.
	ErrRecursionLimit = errors.New("recursion limit exceeded")
)
