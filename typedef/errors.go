package typedef

import "github.com/teranos/dtsgen/errors"

// Failure conditions of a generation pass. Every error returned by this
// package that belongs to one of them is marked with the sentinel, so
// callers can test with errors.Is.
var (
	// ErrIO: an input could not be found, opened, or read.
	ErrIO = errors.New("type definition input unreadable")

	// ErrMalformedRecord: a non-empty input line is not a valid record.
	ErrMalformedRecord = errors.New("malformed type definition record")

	// ErrEmptyInput: nothing was loaded, so there is nothing to emit.
	ErrEmptyInput = errors.New("no type definitions found")
)

func ioError(err error, format string, args ...interface{}) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrIO)
}
