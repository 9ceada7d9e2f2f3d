package types

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a JSH error.
type ErrorCode string

// Error codes.
const (
	// S01xx: scope/syntax errors
	ErrScopeMismatch ErrorCode = "S0101"
	ErrOpenScopes    ErrorCode = "S0102"
	ErrScopeDepth    ErrorCode = "S0103"

	// P01xx: path errors, P02xx: missing values
	ErrEmptyPath     ErrorCode = "P0101"
	ErrPathType      ErrorCode = "P0102"
	ErrNotContainer  ErrorCode = "P0103"
	ErrInvalidLevel  ErrorCode = "P0104"
	ErrCircularValue ErrorCode = "P0105"
	ErrValueNotFound ErrorCode = "P0201"

	// T01xx: call errors
	ErrNoMatchingOverload ErrorCode = "T0101"
	ErrUnknownFunction    ErrorCode = "T0102"
	ErrFunctionName       ErrorCode = "T0103"
	ErrEmptyArray         ErrorCode = "T0104"
	ErrInvalidType        ErrorCode = "T0105"
	ErrTypeMismatch       ErrorCode = "T0106"

	// R01xx: document shell request errors
	ErrInvalidRequest ErrorCode = "R0101"

	// D01xx: evaluation errors
	ErrDepthExceeded ErrorCode = "D0101"
	ErrInvalidNode   ErrorCode = "D0102"
)

// Kind groups error codes into the two outcomes a host reacts to.
type Kind int

const (
	// KindBadCall covers malformed paths, scopes, arguments and calls.
	KindBadCall Kind = iota
	// KindNotFound is a path whose target is absent.
	KindNotFound
)

func (k Kind) String() string {
	if k == KindNotFound {
		return "not-found"
	}
	return "bad-call"
}

// Error represents a structured JSH error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new JSH error. Use -1 as position when it is unknown.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Errorf creates an error without position from a format string.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return NewError(code, fmt.Sprintf(format, args...), -1)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Kind returns the error kind of the code.
func (e *Error) Kind() Kind {
	if e.Code == ErrValueNotFound {
		return KindNotFound
	}
	return KindBadCall
}

// WithToken adds token information to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// IsNotFound reports whether err carries a not-found JSH error.
func IsNotFound(err error) bool {
	var je *Error
	return errors.As(err, &je) && je.Kind() == KindNotFound
}

// IsBadCall reports whether err carries a bad-call JSH error.
func IsBadCall(err error) bool {
	var je *Error
	return errors.As(err, &je) && je.Kind() == KindBadCall
}

// Message returns the user-facing text of err: the bare message for JSH
// errors, err.Error() for anything else.
func Message(err error) string {
	var je *Error
	if errors.As(err, &je) {
		return je.Message
	}
	return err.Error()
}
