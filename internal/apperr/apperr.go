package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping. Load-time kinds are fatal
// to starting an attempt; Storage is retryable without losing in-memory state.
type Kind int

const (
	KindNotFound Kind = iota
	KindValidation
	KindStorage
	KindTimerConsistency
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

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(msg, args...)}
}

func Validation(msg string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(msg, args...)}
}

func Storage(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
