package apperr

import "errors"

// Error is a typed application error. Handlers map Kind to an HTTP
// status instead of matching on error strings.
type Error struct {
	Kind    Kind
	Message string
}

type Kind int

const (
	KindValidation Kind = iota // missing or malformed input field
	KindNotFound               // referenced record does not exist
)

func (e *Error) Error() string {
	return e.Message
}

// Validation returns a validation error carrying the given message.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound returns a not-found error carrying the given message.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func IsValidation(err error) bool {
	return is(err, KindValidation)
}

func IsNotFound(err error) bool {
	return is(err, KindNotFound)
}

func is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
