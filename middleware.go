package relay

// Middleware wraps a handler action and returns a new action with additional behavior.
// It never sees predicates, so chain traversal is unaffected by it.
type Middleware[Req, Res any] func(HandleFunc[Req, Res]) HandleFunc[Req, Res]

// ChainMiddlewares composes middlewares into one, applying them in order.
// The first middleware becomes the outermost wrapper.
func ChainMiddlewares[Req, Res any](mws ...Middleware[Req, Res]) Middleware[Req, Res] {
	return func(next HandleFunc[Req, Res]) HandleFunc[Req, Res] {
		h := next
		for i := len(mws) - 1; i >= 0; i-- { // apply in reverse to make mws[0] outermost
			h = mws[i](h)
		}
		return h
	}
}
