package relay

import (
	"context"
	"fmt"
)

var (
	_ Dispatcher[any, any] = (*Chain[any, any])(nil)
)

// link is a handler with its action already wrapped by the chain middlewares.
type link[Req, Res any] struct {
	handler Handler[Req, Res]
	handle  HandleFunc[Req, Res]
}

// Chain is an ordered, immutable sequence of handlers. The successor of each
// handler is the next one in the sequence.
//
// A Chain is safe for concurrent use as long as its handlers are. The zero value
// is an empty chain without middleware.
type Chain[Req, Res any] struct {
	links []link[Req, Res]
	mw    Middleware[Req, Res]
}

// NewChain creates a Chain from handlers in dispatch order. An empty chain is valid
// and leaves every request unhandled.
func NewChain[Req, Res any](handlers []Handler[Req, Res], opts ...Option[Req, Res]) (*Chain[Req, Res], error) {
	o := &options[Req, Res]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	c := &Chain[Req, Res]{
		links: make([]link[Req, Res], 0, len(handlers)),
		mw:    ChainMiddlewares(o.middlewares...),
	}
	seen := make(map[string]int, len(handlers))
	for i, h := range handlers {
		if err := validate(h); err != nil {
			return nil, fmt.Errorf("relay: handler at position %d: %w", i, err)
		}
		if j, ok := seen[h.Name()]; ok {
			return nil, fmt.Errorf("relay: %w: %s appears at positions %d and %d", ErrCycle, h.Name(), j, i)
		}
		seen[h.Name()] = i
		c.links = append(c.links, c.wrap(h))
	}
	return c, nil
}

func validate[Req, Res any](h Handler[Req, Res]) error {
	if h == nil {
		return ErrNilHandler
	}
	if h.Name() == "" {
		return ErrEmptyName
	}
	return nil
}

func (c *Chain[Req, Res]) wrap(h Handler[Req, Res]) link[Req, Res] {
	handle := h.Handle
	if c.mw != nil {
		handle = c.mw(handle)
	}
	return link[Req, Res]{
		handler: h,
		handle:  handle,
	}
}

// Append returns a new Chain with h added after the last handler.
// The receiver is left unchanged.
func (c *Chain[Req, Res]) Append(h Handler[Req, Res]) (*Chain[Req, Res], error) {
	if err := validate(h); err != nil {
		return nil, fmt.Errorf("relay: append: %w", err)
	}
	for i, l := range c.links {
		if l.handler.Name() == h.Name() {
			return nil, fmt.Errorf("relay: %w: %s already at position %d", ErrCycle, h.Name(), i)
		}
	}
	links := make([]link[Req, Res], len(c.links), len(c.links)+1)
	copy(links, c.links)
	return &Chain[Req, Res]{
		links: append(links, c.wrap(h)),
		mw:    c.mw,
	}, nil
}

// Len returns the number of handlers in the chain.
func (c *Chain[Req, Res]) Len() int {
	return len(c.links)
}

// Names returns the handler names in dispatch order.
func (c *Chain[Req, Res]) Names() []string {
	names := make([]string, 0, len(c.links))
	for _, l := range c.links {
		names = append(names, l.handler.Name())
	}
	return names
}

// Dispatch walks the chain with req. The first handler whose predicate matches
// processes the request and no later handler is consulted. If that handler's
// action fails, the error is returned as a *HandlerError and the outcome is zero.
// A request that no handler matches yields an unhandled Outcome and a nil error.
func (c *Chain[Req, Res]) Dispatch(ctx context.Context, req Req) (Outcome[Res], error) {
	dc, ctx := EnsureDispatchContext(ctx)
	visited := make([]string, 0, len(c.links))
	for _, l := range c.links {
		name := l.handler.Name()
		visited = append(visited, name)
		if !l.handler.Match(ctx, req) {
			continue
		}
		hctx := NewDispatchContext(ctx, &DispatchContext{ID: dc.ID, Handler: name})
		res, err := l.handle(hctx, req)
		if err != nil {
			return Outcome[Res]{}, &HandlerError{Handler: name, Err: err}
		}
		return Outcome[Res]{
			handled: true,
			handler: name,
			result:  res,
			visited: visited,
		}, nil
	}
	return Outcome[Res]{visited: visited}, nil
}
