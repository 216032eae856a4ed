package fileio

import "errors"

// Error kinds reported to the engine. A file that cannot be opened for
// reading is not represented here: the reader surfaces it as a null blob.
var (
	// ErrTooBig means file content exceeds the configured maximum blob size.
	ErrTooBig = errors.New("content exceeds maximum blob size")

	// ErrIO means a read or seek completed with the wrong number of bytes
	// or failed outright; no partial data is ever returned alongside it.
	ErrIO = errors.New("i/o error")

	// ErrWriteFailed covers open, write and chmod failures on the write path.
	ErrWriteFailed = errors.New("write failed")

	// ErrGeneric covers directory creation conflicts and other
	// unclassified failures.
	ErrGeneric = errors.New("operation failed")
)
