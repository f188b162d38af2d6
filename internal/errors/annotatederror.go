// Package errors provides error wrapping that carries structured logging attributes.
//
// It is a drop-in replacement for the standard library errors package with an
// additional Wrap function that annotates an error with a message and optional
// [slog.Attr] values. The attributes of the whole error chain can be attached
// to a log record with [SlogAttrs].
package errors

import (
	"errors"
	"log/slog"
)

// AnnotatedError is an error with a message and structured logging attributes.
type AnnotatedError struct {
	msg   string
	attrs []slog.Attr
	cause error
}

// Wrap annotates err with a message and optional [slog.Attr] values.
//
// The resulting error message is "msg: err".
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &AnnotatedError{
		msg:   msg,
		attrs: attrs,
		cause: err,
	}
}

// NewSentinel creates an error without a cause, suitable for package-level
// sentinel error values.
func NewSentinel(msg string, attrs ...slog.Attr) error {
	return &AnnotatedError{
		msg:   msg,
		attrs: attrs,
		cause: nil,
	}
}

// Error implements the error interface.
func (e *AnnotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

// Unwrap returns the wrapped error.
func (e *AnnotatedError) Unwrap() error {
	return e.cause
}

// Attrs returns the logging attributes attached to this error.
func (e *AnnotatedError) Attrs() []slog.Attr {
	return e.attrs
}

// SlogAttrs collects the logging attributes of every AnnotatedError in the
// chain of err, outermost first.
func SlogAttrs(err error) []slog.Attr {
	var attrs []slog.Attr
	for err != nil {
		var annotated *AnnotatedError
		if errors.As(err, &annotated) {
			attrs = append(attrs, annotated.attrs...)
			err = annotated.cause
			continue
		}
		err = errors.Unwrap(err)
	}
	return attrs
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps the standard library errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// New creates an error with the given message.
func New(msg string) error {
	return errors.New(msg)
}
