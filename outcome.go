package relay

// Outcome is the result of a dispatch: either handled, with the result of the
// consuming handler, or unhandled.
type Outcome[Res any] struct {
	handled bool
	handler string
	result  Res
	visited []string
}

// Handled reports whether a handler consumed the request.
func (o Outcome[Res]) Handled() bool {
	return o.handled
}

// Result returns the result and true when the request was handled.
func (o Outcome[Res]) Result() (Res, bool) {
	return o.result, o.handled
}

// Handler returns the name of the consuming handler, or "" when unhandled.
func (o Outcome[Res]) Handler() string {
	return o.handler
}

// Visited returns the names of the handlers whose predicate was evaluated, in chain order.
func (o Outcome[Res]) Visited() []string {
	return append([]string(nil), o.visited...)
}

// Require returns the result, or ErrUnhandled when no handler processed the request.
// It is meant for call sites that treat an unhandled request as fatal.
func (o Outcome[Res]) Require() (Res, error) {
	if !o.handled {
		var zero Res
		return zero, ErrUnhandled
	}
	return o.result, nil
}
