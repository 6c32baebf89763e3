// errors.go - Structured decode error taxonomy for the footprint codec
package parser

import "fmt"

// ErrorKind classifies decode failures. All decode errors are permanent
// and non-retryable; a nested failure aborts the whole enclosing decode
// and no partial entity is ever returned.
type ErrorKind string

const (
	// ErrWrongTag - the leading tag atom does not match the expected
	// symbol for this entity.
	ErrWrongTag ErrorKind = "WRONG_TAG"
	// ErrTruncated - fewer positional elements than required.
	ErrTruncated ErrorKind = "TRUNCATED"
	// ErrInvalidNumber - a numeric field's token fails numeric parse.
	ErrInvalidNumber ErrorKind = "INVALID_NUMBER"
	// ErrInvalidEnumValue - a vocabulary-constrained token is outside
	// the closed set.
	ErrInvalidEnumValue ErrorKind = "INVALID_ENUM_VALUE"
	// ErrInvalidShape - a structurally malformed sub-node (wrong arity,
	// wrong nesting) where a positional read is impossible.
	ErrInvalidShape ErrorKind = "INVALID_SHAPE"
	// ErrInvalidUUID - a uuid field fails RFC 4122 validation.
	ErrInvalidUUID ErrorKind = "INVALID_UUID"
)

// DecodeError is the structured failure type returned by every decode
// function in this package.
type DecodeError struct {
	Kind    ErrorKind
	Tag     string // entity tag being decoded when the error occurred
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: decoding %q: %s: %v", e.Kind, e.Tag, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: decoding %q: %s", e.Kind, e.Tag, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *DecodeError) Unwrap() error { return e.Cause }

// Error constructors for consistent decode failures

func wrongTag(expected, got string) *DecodeError {
	return &DecodeError{
		Kind:    ErrWrongTag,
		Tag:     expected,
		Message: fmt.Sprintf("expected tag %q, got %q", expected, got),
	}
}

func truncated(tag, what string) *DecodeError {
	return &DecodeError{
		Kind:    ErrTruncated,
		Tag:     tag,
		Message: "missing " + what,
	}
}

func invalidNumber(tag, token string, cause error) *DecodeError {
	return &DecodeError{
		Kind:    ErrInvalidNumber,
		Tag:     tag,
		Message: fmt.Sprintf("%q is not a number", token),
		Cause:   cause,
	}
}

func invalidEnum(tag string, cause error) *DecodeError {
	return &DecodeError{
		Kind:    ErrInvalidEnumValue,
		Tag:     tag,
		Message: "invalid enum value",
		Cause:   cause,
	}
}

func invalidShape(tag, message string) *DecodeError {
	return &DecodeError{
		Kind:    ErrInvalidShape,
		Tag:     tag,
		Message: message,
	}
}

func invalidUUID(token string, cause error) *DecodeError {
	return &DecodeError{
		Kind:    ErrInvalidUUID,
		Tag:     "uuid",
		Message: fmt.Sprintf("invalid UUID format: %q", token),
		Cause:   cause,
	}
}

// KindOf returns the ErrorKind of err when it is a DecodeError, or ""
// otherwise. Handy for tests and API error mapping.
func KindOf(err error) ErrorKind {
	if de, ok := err.(*DecodeError); ok {
		return de.Kind
	}
	return ""
}
