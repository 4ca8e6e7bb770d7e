package sml

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a decode failure.
type ErrorKind uint8

const (
	// StructuralError indicates a wrong type, a wrong fixed list length or an exhausted buffer.
	StructuralError ErrorKind = iota + 1
	// NumericError indicates a number whose content is wider than its declared width.
	NumericError
	// SemanticError indicates an unrecognized tag in a tagged union.
	SemanticError
)

func (k ErrorKind) String() string {
	switch k {
	case StructuralError:
		return "structural"
	case NumericError:
		return "numeric"
	case SemanticError:
		return "semantic"
	default:
		return "unknown"
	}
}

var (
	// ErrUnexpectedEOF indicates that the buffer ended before the declared length was satisfied.
	ErrUnexpectedEOF = errors.New("unexpected end of buffer")

	// ErrInvalidTL indicates a malformed type-length header.
	ErrInvalidTL = errors.New("invalid type-length header")

	// ErrTypeMismatch indicates that an element has a different type than expected.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrLengthMismatch indicates that a list does not have the mandated number of elements.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrImplausibleCount indicates that a list claims more elements than bytes remain.
	ErrImplausibleCount = errors.New("implausible element count")

	// ErrDepthExceeded indicates that a tree nests deeper than the buffer allows.
	ErrDepthExceeded = errors.New("nesting depth exceeded")
)

var (
	// ErrNumberTooWide indicates that a number's content is wider than its declared width.
	ErrNumberTooWide = errors.New("number exceeds declared width")

	// ErrUnknownTag indicates an unrecognized tag in a tagged union.
	ErrUnknownTag = errors.New("unknown tag")
)

// DecodeError describes a failure while decoding an SML element.
//
// DecodeError wraps one of the package's sentinel errors, so it can be matched
// with errors.Is, and it can be extracted with errors.As to obtain the Kind and
// the buffer Offset where the failing element started.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	Msg    string
	err    error
}

// NewDecodeError creates a DecodeError of the given kind at offset which wraps err.
func NewDecodeError(kind ErrorKind, offset int, err error, format string, args ...any) *DecodeError {
	return &DecodeError{
		Kind:   kind,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
		err:    err,
	}
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("sml: %s error at offset %d: %v", e.Kind, e.Offset, e.err)
	}

	return fmt.Sprintf("sml: %s error at offset %d: %v: %s", e.Kind, e.Offset, e.err, e.Msg)
}

// Unwrap returns the wrapped sentinel error.
func (e *DecodeError) Unwrap() error {
	return e.err
}

// KindOf returns the ErrorKind of err, or 0 if err is not a DecodeError.
func KindOf(err error) ErrorKind {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr.Kind
	}

	return 0
}
