// Package errs defines the sentinel errors returned by scanfilter packages.
//
// Callers should match them with errors.Is, since most call sites wrap them
// with additional context.
package errs

import "errors"

var (
	// ErrByteArrayTooLong is returned when a byte array does not fit the
	// 3-byte length prefix of the legacy encoding.
	ErrByteArrayTooLong = errors.New("byte array exceeds legacy length prefix")

	// ErrColumnOffsetTooLong is returned when a column qualifier boundary is too
	// long to be encoded by the legacy protocol.
	ErrColumnOffsetTooLong = errors.New("column offset too long")

	// ErrInvalidMessage is returned when a structured message cannot be parsed.
	ErrInvalidMessage = errors.New("invalid structured message")

	// ErrMissingRequiredField is returned when a parsed structured message lacks a required field.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrUnsupportedProtocol is returned for an unknown protocol version.
	ErrUnsupportedProtocol = errors.New("unsupported protocol version")

	// ErrUnknownFilter is returned when a filter type is not present in the registry.
	ErrUnknownFilter = errors.New("unknown filter type")

	// ErrTypeIDCollision is returned when two distinct filter names hash to the same type ID.
	ErrTypeIDCollision = errors.New("filter type ID collision")

	// ErrInvalidFilterName is returned when a filter name is empty or too long.
	ErrInvalidFilterName = errors.New("invalid filter name")

	// ErrNilFilter is returned when a nil filter is passed for encoding.
	ErrNilFilter = errors.New("nil filter")
)
