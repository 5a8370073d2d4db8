package property

import (
	"errors"
	"fmt"
	"io"
)

// ErrorCode categorizes codec errors.
type ErrorCode string

const (
	// CodeUnknownTag indicates a tag byte with no registered strategy.
	CodeUnknownTag ErrorCode = "UNKNOWN_TAG"

	// CodeCorruptPayload indicates a payload shorter than its declared or
	// implied length, or otherwise malformed.
	CodeCorruptPayload ErrorCode = "CORRUPT_PAYLOAD"

	// CodeTypeMismatch indicates a typed accessor was used on a value of a
	// different type.
	CodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// CodeIncompatibleTypes indicates a comparison between unrelated types.
	CodeIncompatibleTypes ErrorCode = "INCOMPATIBLE_TYPES"

	// CodeNestingTooDeep indicates a composite value nested beyond MaxDepth.
	CodeNestingTooDeep ErrorCode = "NESTING_TOO_DEEP"

	// CodeConfiguration indicates an invalid registry configuration.
	CodeConfiguration ErrorCode = "CONFIGURATION"
)

// Sentinels for use with errors.Is. Any *Error matches the sentinel with the
// same Code.
var (
	ErrUnknownTag        = &Error{Code: CodeUnknownTag, Message: "unknown type tag"}
	ErrCorruptPayload    = &Error{Code: CodeCorruptPayload, Message: "corrupt payload"}
	ErrTypeMismatch      = &Error{Code: CodeTypeMismatch, Message: "type mismatch"}
	ErrIncompatibleTypes = &Error{Code: CodeIncompatibleTypes, Message: "incompatible types"}
	ErrNestingTooDeep    = &Error{Code: CodeNestingTooDeep, Message: "nesting too deep"}
	ErrConfiguration     = &Error{Code: CodeConfiguration, Message: "invalid registry configuration"}
)

// Error is returned by every fallible operation in this package.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Tag is the tag being decoded, expected or compared.
	Tag Tag

	// Other is the second tag for TYPE_MISMATCH (actual) and
	// INCOMPATIBLE_TYPES (right-hand side).
	Other Tag

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

func unknownTag(t Tag) *Error {
	return &Error{
		Code:    CodeUnknownTag,
		Tag:     t,
		Message: fmt.Sprintf("no strategy registered for %s", t),
	}
}

func corrupt(t Tag, format string, args ...any) *Error {
	return &Error{
		Code:    CodeCorruptPayload,
		Tag:     t,
		Message: fmt.Sprintf("%s: %s", t, fmt.Sprintf(format, args...)),
	}
}

func typeMismatch(want, got Tag) *Error {
	return &Error{
		Code:    CodeTypeMismatch,
		Tag:     want,
		Other:   got,
		Message: fmt.Sprintf("value is %s, not %s", got, want),
	}
}

func incompatible(a, b Tag) *Error {
	return &Error{
		Code:    CodeIncompatibleTypes,
		Tag:     a,
		Other:   b,
		Message: fmt.Sprintf("cannot compare %s with %s", a, b),
	}
}

func configError(format string, args ...any) *Error {
	return &Error{Code: CodeConfiguration, Message: fmt.Sprintf(format, args...)}
}

// readError converts a failed read of t's payload into an error. A stream
// that ends early is a corrupt payload and deliberately does not wrap io.EOF,
// so callers looping until io.EOF never mistake truncation for a clean end.
// Other I/O errors pass through.
func readError(t Tag, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &Error{
			Code:    CodeCorruptPayload,
			Tag:     t,
			Message: fmt.Sprintf("%s: payload truncated", t),
		}
	}
	return fmt.Errorf("read %s payload: %w", t, err)
}
