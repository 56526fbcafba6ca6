package relay

// Option configures a Chain.
type Option[Req, Res any] func(*options[Req, Res])

type options[Req, Res any] struct {
	middlewares []Middleware[Req, Res]
}

// WithMiddleware sets middlewares applied to every handler action of the chain.
// The first middleware becomes the outermost wrapper.
func WithMiddleware[Req, Res any](mws ...Middleware[Req, Res]) Option[Req, Res] {
	return func(o *options[Req, Res]) {
		o.middlewares = mws
	}
}
