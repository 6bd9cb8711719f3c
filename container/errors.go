package container

import (
	"errors"
	"fmt"
)

// Sentinel errors for container package.
var (
	// ErrInvalidFormat is returned when data is not a well-formed container.
	ErrInvalidFormat = errors.New("container: invalid format")

	// ErrUnsupportedVersion is returned when the header carries a version
	// this package cannot read.
	ErrUnsupportedVersion = errors.New("container: unsupported version")

	// ErrRecordRange is returned by ReadRecord for an index outside [0, Len()).
	ErrRecordRange = errors.New("container: record index out of range")

	// ErrDuplicateRune is returned by Builder when a code point is added twice.
	ErrDuplicateRune = errors.New("container: duplicate code point")

	// ErrRuneRange is returned by Builder for code points above 0xFFFF.
	ErrRuneRange = errors.New("container: code point does not fit in 16 bits")
)

// FormatError describes a malformed container.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "container: invalid format: " + e.Reason
}

// Unwrap returns ErrInvalidFormat so that errors.Is matches.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// VersionError is returned when a header carries an unexpected version byte.
type VersionError struct {
	Got  uint8
	Want uint8
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("container: unsupported version %d (want %d)", e.Got, e.Want)
}

// Unwrap returns ErrUnsupportedVersion so that errors.Is matches.
func (e *VersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

func formatErrorf(format string, args ...any) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}
