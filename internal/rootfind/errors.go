package rootfind

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the sentinel for solver settings that cannot
// run at all, such as a non-positive iteration budget. No computation is
// performed when it is returned.
var ErrInvalidConfiguration = errors.New("invalid solver configuration")

// ErrInvalidBracket is the sentinel for Bisect endpoints whose function
// values do not change sign, violating the intermediate value theorem
// precondition. No iteration is performed when it is returned.
var ErrInvalidBracket = errors.New("endpoints do not bracket a sign change")

// Error carries context for a solver failure and wraps an underlying
// sentinel so callers can match with errors.Is.
type Error struct {
	// Message describes the failure.
	Message string
	// Op is the solver operation that rejected its input.
	Op string
	// Err is the underlying sentinel, if any.
	Err error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

// Unwrap returns the underlying sentinel, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WithOperation adds the solver operation to the error.
func (e *Error) WithOperation(op string) *Error {
	e.Op = op
	return e
}

// WrapError wraps sentinel err with a descriptive message.
// If err is nil, WrapError returns nil.
func WrapError(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapErrorf wraps sentinel err with a formatted message.
// If err is nil, WrapErrorf returns nil.
func WrapErrorf(err error, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// checkSettings validates the shared stopping configuration. All three
// solvers enforce it identically.
func checkSettings(op string, s Settings) error {
	if s.MaxIterations <= 0 {
		return WrapErrorf(ErrInvalidConfiguration,
			"max iterations must be positive, got %d", s.MaxIterations).WithOperation(op)
	}
	return nil
}
