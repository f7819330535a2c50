package layout

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindSourceUnavailable, "Source Unavailable"},
		{KindBufferOverflow, "Buffer Overflow"},
		{KindMalformedLayer, "Malformed Layer"},
		{KindUnexpectedCharacter, "Unexpected Character"},
		{KindIncompleteLayout, "Incomplete Layout"},
		{ErrorKind(99), "ErrorKind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	pe := newMalformedLayer("invalid number of keys in row, actually 19, expected 20", 2, 40, 321)

	msg := pe.Error()
	for _, want := range []string{"Malformed Layer", "layer 2", "key 40", "byte offset 321", "actually 19"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	pe := newSourceError("could not open layout file", cause)

	if !errors.Is(pe, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}
	if !strings.Contains(pe.Error(), "permission denied") {
		t.Errorf("Error() = %q, should include the cause", pe.Error())
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"source unavailable", newSourceError("open failed", nil), IsSourceUnavailable},
		{"buffer overflow", newBufferOverflow("too many digits", 1, 1, 5), IsBufferOverflow},
		{"malformed layer", newMalformedLayer("short row", 1, 20, 60), IsMalformedLayer},
		{"unexpected character", newUnexpectedCharacter('x', 1, 3, 6), IsUnexpectedCharacter},
		{"incomplete layout", newIncompleteLayout("truncated", 1, 40, 120), IsIncompleteLayout},
	}

	preds := map[string]func(error) bool{
		"source unavailable":   IsSourceUnavailable,
		"buffer overflow":      IsBufferOverflow,
		"malformed layer":      IsMalformedLayer,
		"unexpected character": IsUnexpectedCharacter,
		"incomplete layout":    IsIncompleteLayout,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for name, pred := range preds {
				want := name == tt.name
				if got := pred(tt.err); got != want {
					t.Errorf("%s predicate = %v, want %v", name, got, want)
				}
			}
		})
	}
}

func TestErrorPredicatesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("parsing layout: %w", newBufferOverflow("too many digits", 1, 1, 5))

	if !IsBufferOverflow(wrapped) {
		t.Error("IsBufferOverflow() should see through fmt.Errorf wrapping")
	}
	if IsMalformedLayer(wrapped) {
		t.Error("IsMalformedLayer() matched a BufferOverflow error")
	}
}

func TestErrorPredicatesOnForeignError(t *testing.T) {
	err := fmt.Errorf("some other failure")

	for name, pred := range map[string]func(error) bool{
		"IsSourceUnavailable":   IsSourceUnavailable,
		"IsBufferOverflow":      IsBufferOverflow,
		"IsMalformedLayer":      IsMalformedLayer,
		"IsUnexpectedCharacter": IsUnexpectedCharacter,
		"IsIncompleteLayout":    IsIncompleteLayout,
	} {
		if pred(err) {
			t.Errorf("%s = true for a non-ParseError", name)
		}
	}
}
