// Package errs defines the sentinel errors shared by the textlzw packages.
//
// Callers should match them with errors.Is, since most are returned wrapped
// with additional context (offending code, byte offset, expected range).
package errs

import "errors"

// Configuration errors.
var (
	// ErrInvalidCodeWidth indicates a code width outside the supported [9, 16] bit range.
	ErrInvalidCodeWidth = errors.New("invalid code width")
	// ErrInvalidCompression indicates an unknown or unsupported secondary compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrInvalidMode indicates a CLI mode argument other than "-" or "+".
	ErrInvalidMode = errors.New("invalid mode argument")
)

// Code stream errors.
var (
	// ErrMalformedStream indicates a code that the decoder cannot have learned yet.
	ErrMalformedStream = errors.New("malformed code stream")
	// ErrTruncatedStream indicates the stream ended before the end-of-stream code.
	ErrTruncatedStream = errors.New("truncated code stream")
)

// Frame errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid frame header size")
	ErrInvalidMagic       = errors.New("invalid frame magic number")
	ErrUnsupportedVersion = errors.New("unsupported frame version")
	ErrInvalidPayloadSize = errors.New("invalid frame payload size")
	ErrSizeMismatch       = errors.New("decoded size does not match frame header")
	ErrChecksumMismatch   = errors.New("decoded checksum does not match frame header")
)
