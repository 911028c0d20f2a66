// Package apperror defines the application error carried by validation
// outcomes. It is the single error kind the validation layer intercepts;
// every other error passes through untouched.
package apperror

import (
	"errors"
	"fmt"
)

// Stable error codes shared across the application.
const (
	CodeInvalid   = "invalid"
	CodeForbidden = "forbidden"
	CodeNotFound  = "not_found"
	CodeConflict  = "conflict"
	CodeInternal  = "internal"
)

// Fields holds structured validation details keyed by field name.
type Fields map[string]string

// Error is an application-level error carrying an optional stable code and
// optional per-field details. The zero message is allowed: a validator that
// fails without detail produces a bare Error.
type Error struct {
	Code   string
	Fields Fields

	msg   string
	cause error
}

// New returns an Error with a message and no code.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// NewCode returns an Error with a stable code and a message.
func NewCode(code, msg string) *Error {
	return &Error{Code: code, msg: msg}
}

// Newf returns an Error with a formatted message and no code.
func Newf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// WithFields returns a copy of the error with the given field details.
func (e *Error) WithFields(fields Fields) *Error {
	c := *e
	c.Fields = fields
	return &c
}

// Wrap returns a copy of the error with an underlying cause, visible to
// errors.Is and errors.Unwrap.
func (e *Error) Wrap(cause error) *Error {
	c := *e
	c.cause = cause
	return &c
}

func (e *Error) Error() string {
	switch {
	case e.msg != "":
		return e.msg
	case e.Code != "":
		return e.Code
	default:
		return "application error"
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// As extracts an *Error from anywhere in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// IsApp reports whether err belongs to the application error hierarchy,
// i.e. whether an *Error appears anywhere in its chain.
func IsApp(err error) bool {
	_, ok := As(err)
	return ok
}
