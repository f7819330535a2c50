package layout

import (
	"errors"
	"fmt"
)

// Error types for layout parsing

// ErrorKind represents the category of parse error that occurred
type ErrorKind int

const (
	// KindSourceUnavailable indicates the layout source could not be opened or read
	KindSourceUnavailable ErrorKind = iota
	// KindBufferOverflow indicates a key value with too many digits, or one
	// that does not fit in 16 bits
	KindBufferOverflow
	// KindMalformedLayer indicates a row or layer with the wrong shape
	KindMalformedLayer
	// KindUnexpectedCharacter indicates a character that is not a digit,
	// comma, or whitespace
	KindUnexpectedCharacter
	// KindIncompleteLayout indicates the source ended inside a partially
	// filled layer
	KindIncompleteLayout
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindSourceUnavailable:
		return "Source Unavailable"
	case KindBufferOverflow:
		return "Buffer Overflow"
	case KindMalformedLayer:
		return "Malformed Layer"
	case KindUnexpectedCharacter:
		return "Unexpected Character"
	case KindIncompleteLayout:
		return "Incomplete Layout"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// ParseError represents a fatal error encountered while parsing a layout file.
// It carries enough context (layer, key index, byte offset) to point the user
// at the exact offending location in the source.
type ParseError struct {
	Kind    ErrorKind // Category of error
	Message string    // Human-readable description of what was expected vs found
	Layer   int       // 1-based layer number (0 if not applicable)
	Key     int       // 1-based key index within the layer, row-major (0 if not applicable)
	Offset  int64     // Byte offset in the source where the error was detected
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Layer > 0 {
		return fmt.Sprintf("%s: %s (layer %d, key %d, byte offset %d)",
			e.Kind, e.Message, e.Layer, e.Key, e.Offset)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newSourceError creates a SourceUnavailable error wrapping an I/O failure
func newSourceError(message string, err error) *ParseError {
	return &ParseError{
		Kind:    KindSourceUnavailable,
		Message: message,
		Err:     err,
	}
}

// newBufferOverflow creates a BufferOverflow error at the given position
func newBufferOverflow(message string, layer, key int, offset int64) *ParseError {
	return &ParseError{
		Kind:    KindBufferOverflow,
		Message: message,
		Layer:   layer,
		Key:     key,
		Offset:  offset,
	}
}

// newMalformedLayer creates a MalformedLayer error at the given position
func newMalformedLayer(message string, layer, key int, offset int64) *ParseError {
	return &ParseError{
		Kind:    KindMalformedLayer,
		Message: message,
		Layer:   layer,
		Key:     key,
		Offset:  offset,
	}
}

// newUnexpectedCharacter creates an UnexpectedCharacter error for the given byte
func newUnexpectedCharacter(ch byte, layer, key int, offset int64) *ParseError {
	return &ParseError{
		Kind:    KindUnexpectedCharacter,
		Message: fmt.Sprintf("unexpected character %q, expected digit, comma, or whitespace", ch),
		Layer:   layer,
		Key:     key,
		Offset:  offset,
	}
}

// newIncompleteLayout creates an IncompleteLayout error describing the partial layer
func newIncompleteLayout(message string, layer, key int, offset int64) *ParseError {
	return &ParseError{
		Kind:    KindIncompleteLayout,
		Message: message,
		Layer:   layer,
		Key:     key,
		Offset:  offset,
	}
}

// kindOf extracts the error kind from an error chain, returning false if the
// error is not a ParseError
func kindOf(err error) (ErrorKind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

// IsSourceUnavailable checks if an error is a source open/read failure
func IsSourceUnavailable(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindSourceUnavailable
}

// IsBufferOverflow checks if an error is a digit-capacity or value overflow
func IsBufferOverflow(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindBufferOverflow
}

// IsMalformedLayer checks if an error is a row/layer shape violation
func IsMalformedLayer(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindMalformedLayer
}

// IsUnexpectedCharacter checks if an error is a stray-character failure
func IsUnexpectedCharacter(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindUnexpectedCharacter
}

// IsIncompleteLayout checks if an error is a truncated-layer failure
func IsIncompleteLayout(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindIncompleteLayout
}
