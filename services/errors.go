package services

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure. Controllers map kinds to HTTP statuses
// and serialize only the stable message; the wrapped cause stays server-side.
type Kind int

const (
	// KindFault is the zero value so unclassified errors degrade to 500.
	KindFault Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Fault(message string, cause error) *Error {
	return &Error{Kind: KindFault, Message: message, Err: cause}
}

// KindOf extracts the kind from an error chain. Anything that is not a
// *services.Error counts as a fault.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindFault
}

// MessageOf returns the client-safe message for an error. Faults get a
// generic message so internals never reach the boundary.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) && se.Kind != KindFault {
		return se.Message
	}
	return "Erro interno no servidor"
}
