package interpreter

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a fault raised while processing a line
type ErrorKind string

const (
	UndefinedVariable ErrorKind = "UNDEFINED_VARIABLE"
	TypeMismatch      ErrorKind = "TYPE_MISMATCH"
	MalformedLiteral  ErrorKind = "MALFORMED_LITERAL"
	IndexOutOfBounds  ErrorKind = "INDEX_OUT_OF_BOUNDS"
	DivisionByZero    ErrorKind = "DIVISION_BY_ZERO"
	UndefinedFunction ErrorKind = "UNDEFINED_FUNCTION"
	InvalidCondition  ErrorKind = "INVALID_CONDITION"
	UnmatchedElse     ErrorKind = "UNMATCHED_ELSE"
	CallDepthExceeded ErrorKind = "CALL_DEPTH_EXCEEDED"
	ActuatorFailed    ErrorKind = "ACTUATOR_FAILED"
)

// Error is a fault raised by the evaluator. Errors of the same Kind match with errors.Is.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is
var (
	ErrUndefinedVariable = &Error{Kind: UndefinedVariable}
	ErrTypeMismatch      = &Error{Kind: TypeMismatch}
	ErrMalformedLiteral  = &Error{Kind: MalformedLiteral}
	ErrIndexOutOfBounds  = &Error{Kind: IndexOutOfBounds}
	ErrDivisionByZero    = &Error{Kind: DivisionByZero}
	ErrUndefinedFunction = &Error{Kind: UndefinedFunction}
	ErrInvalidCondition  = &Error{Kind: InvalidCondition}
	ErrUnmatchedElse     = &Error{Kind: UnmatchedElse}
	ErrCallDepthExceeded = &Error{Kind: CallDepthExceeded}
	ErrActuatorFailed    = &Error{Kind: ActuatorFailed}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the ErrorKind carried by err, or "" if err is not a fault
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
