package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-kratos/relay"
)

// dispatch runs req through a single-handler chain named "worker" wrapped by mws.
func dispatch(t *testing.T, handle relay.HandleFunc[string, string], req string, mws ...relay.Middleware[string, string]) (relay.Outcome[string], error) {
	t.Helper()
	chain, err := relay.NewChain(
		[]relay.Handler[string, string]{relay.NewHandler("worker", relay.Always[string](), handle)},
		relay.WithMiddleware(mws...),
	)
	require.NoError(t, err)
	ctx := relay.NewDispatchContext(context.Background(), &relay.DispatchContext{ID: "dispatch-1"})
	return chain.Dispatch(ctx, req)
}
