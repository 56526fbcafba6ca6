package relay

import "context"

// MatchFunc reports whether a handler can process the request.
// It must not mutate the request and should be free of side effects.
type MatchFunc[Req any] func(context.Context, Req) bool

// HandleFunc processes a request that was matched and returns its result.
type HandleFunc[Req, Res any] func(context.Context, Req) (Res, error)

// Handler is a single link of a Chain: a named rule that decides whether it can
// process a request and, if so, produces a result.
//
// Handlers are shared across dispatches and may be invoked concurrently.
// Implementations that hold mutable state must synchronize it themselves.
type Handler[Req, Res any] interface {
	Name() string
	Match(context.Context, Req) bool
	Handle(context.Context, Req) (Res, error)
}

// Dispatcher routes a request to the first handler able to process it.
type Dispatcher[Req, Res any] interface {
	Dispatch(context.Context, Req) (Outcome[Res], error)
}
