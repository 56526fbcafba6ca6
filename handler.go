package relay

import "context"

var (
	_ Handler[any, any] = (*funcHandler[any, any])(nil)
)

// funcHandler stores a predicate and an action as plain function values.
type funcHandler[Req, Res any] struct {
	name   string
	match  MatchFunc[Req]
	handle HandleFunc[Req, Res]
}

// NewHandler creates a Handler from a predicate and an action.
// A nil match never matches; a nil handle returns the zero result.
func NewHandler[Req, Res any](name string, match MatchFunc[Req], handle HandleFunc[Req, Res]) Handler[Req, Res] {
	return &funcHandler[Req, Res]{
		name:   name,
		match:  match,
		handle: handle,
	}
}

// Name returns the name of the handler.
func (h *funcHandler[Req, Res]) Name() string {
	return h.name
}

// Match evaluates the handler predicate.
func (h *funcHandler[Req, Res]) Match(ctx context.Context, req Req) bool {
	if h.match == nil {
		return false
	}
	return h.match(ctx, req)
}

// Handle runs the handler action.
func (h *funcHandler[Req, Res]) Handle(ctx context.Context, req Req) (Res, error) {
	if h.handle == nil {
		var zero Res
		return zero, nil
	}
	return h.handle(ctx, req)
}
