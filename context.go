package relay

import (
	"context"

	"github.com/google/uuid"
)

// DispatchContext holds information about the current dispatch.
type DispatchContext struct {
	// ID identifies a single Dispatch call.
	ID string
	// Handler is the name of the handler whose action is running.
	// It is empty while predicates are evaluated.
	Handler string
}

// ctxDispatchKey is an unexported type for keys defined in this package.
type ctxDispatchKey struct{}

// NewDispatchContext returns a new Context that carries dc.
func NewDispatchContext(ctx context.Context, dc *DispatchContext) context.Context {
	return context.WithValue(ctx, ctxDispatchKey{}, dc)
}

// FromDispatchContext retrieves the DispatchContext from the context.
func FromDispatchContext(ctx context.Context) (*DispatchContext, bool) {
	dc, ok := ctx.Value(ctxDispatchKey{}).(*DispatchContext)
	return dc, ok
}

// EnsureDispatchContext retrieves the DispatchContext from the context, or creates a new one with a fresh ID.
func EnsureDispatchContext(ctx context.Context) (*DispatchContext, context.Context) {
	dc, ok := FromDispatchContext(ctx)
	if !ok {
		dc = &DispatchContext{ID: uuid.NewString()}
		ctx = NewDispatchContext(ctx, dc)
	}
	return dc, ctx
}
