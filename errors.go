package relay

import (
	"errors"
	"fmt"
)

var (
	// ErrNilHandler is returned when a nil handler is added to a chain.
	ErrNilHandler = errors.New("nil handler")
	// ErrEmptyName is returned when a handler has no name.
	ErrEmptyName = errors.New("handler name is empty")
	// ErrCycle is returned when a chain would visit the same handler twice.
	ErrCycle = errors.New("handler chain cycle")
	// ErrAlreadyLinked is returned when a handler already has a different successor.
	ErrAlreadyLinked = errors.New("handler already linked")
	// ErrDuplicateName is returned when two different handlers share a name.
	ErrDuplicateName = errors.New("duplicate handler name")
	// ErrUnknownHandler is returned when a chain head was never linked.
	ErrUnknownHandler = errors.New("unknown handler")
	// ErrUnhandled is returned by Outcome.Require when no handler processed the request.
	ErrUnhandled = errors.New("request not handled")
)

// HandlerError reports a failure of the action of the handler that consumed a request.
type HandlerError struct {
	Handler string
	Err     error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("relay: handler %s: %v", e.Handler, e.Err)
}

// Unwrap returns the action error so errors.Is and errors.As see through it.
func (e *HandlerError) Unwrap() error {
	return e.Err
}
