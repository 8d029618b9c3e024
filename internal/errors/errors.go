// Package errors defines domain-level errors used throughout the application.
// These errors represent failures that callers are expected to match with errors.Is,
// they are always wrapped with additional context at the point of failure.
//
// NOTE: Important for developers
// When adding a new error here, consider how the CLI reports it.
//
// Don't forget to:
// 1. Wrap the error using fmt.Errorf("%w: ...", err) where it is returned
// 2. Add a test case that asserts errors.Is against the new sentinel
package errors

import (
	"errors"
)

var (
	// ErrRenderFailed indicates that the output sink refused a write while usage text was being rendered.
	// Rendering stops at the first failed write and the sink is left partially written.
	ErrRenderFailed = errors.New("usage render failed")

	// ErrInvalidDocument indicates that a usage document could not be turned into a display configuration.
	// This typically results from schema or semantic validation failures.
	ErrInvalidDocument = errors.New("invalid usage document")

	// ErrUnsupportedFormat indicates that a usage document has a file extension we cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
