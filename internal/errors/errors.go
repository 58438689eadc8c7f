// Package errors holds the coded error type shared by the sheet packages.
// Callers branch on the Code with the Is* predicates; Meta carries the keys
// and locations involved so front ends can explain the failure.
package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an Error
type Code string

const (
	// CodeUnknown marks errors that did not originate in this module
	CodeUnknown Code = "unknown"
	// CodeInvalidArgument is a malformed key, location, or content value
	CodeInvalidArgument Code = "invalid_argument"
	// CodeNotFound is an unknown content or character key
	CodeNotFound Code = "not_found"
	// CodeAlreadyExists is a duplicate content registration
	CodeAlreadyExists Code = "already_exists"
	// CodeValidation is service input that failed validation
	CodeValidation Code = "validation"
	// CodeConfirmationRequired is a reassignment that would discard stored
	// choices and was not confirmed
	CodeConfirmationRequired Code = "confirmation_required"
)

// Error is a coded error with optional cause and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta records key on the error and returns it for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

func coded(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newf(code Code, format string, args ...any) *Error {
	return coded(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. A coded cause keeps its code and a copy of its
// meta; any other cause becomes CodeUnknown. Wrap(nil) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	var ce *Error
	if errors.As(err, &ce) {
		wrapped.Code = ce.Code
		if ce.Meta != nil {
			wrapped.Meta = make(map[string]any, len(ce.Meta))
			for k, v := range ce.Meta {
				wrapped.Meta[k] = v
			}
		}
	}
	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode is Wrap with the code replaced
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func NotFound(message string) *Error { return coded(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error {
	return newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error { return coded(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return newf(CodeAlreadyExists, format, args...)
}

func Validation(message string) *Error { return coded(CodeValidation, message) }

func Validationf(format string, args ...any) *Error {
	return newf(CodeValidation, format, args...)
}

func ConfirmationRequiredf(format string, args ...any) *Error {
	return newf(CodeConfirmationRequired, format, args...)
}

// GetCode returns the code of the outermost coded error in err's chain
func GetCode(err error) Code {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return CodeUnknown
}

// Is reports whether err carries code
func Is(err error, code Code) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == code
}

func IsNotFound(err error) bool             { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool      { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool        { return Is(err, CodeAlreadyExists) }
func IsValidation(err error) bool           { return Is(err, CodeValidation) }
func IsConfirmationRequired(err error) bool { return Is(err, CodeConfirmationRequired) }

// GetMeta returns the meta of the outermost coded error in err's chain
func GetMeta(err error) map[string]any {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Meta
	}
	return nil
}
