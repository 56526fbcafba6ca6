package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/go-kratos/relay"
)

func TestTracing(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
	}{
		{name: "ok", wantStatus: codes.Ok},
		{name: "error", err: errors.New("boom"), wantStatus: codes.Error},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			defer func() { _ = tp.Shutdown(context.Background()) }()

			mw := Tracing[string, string](
				WithTracerProvider(tp),
				WithAttributes(attribute.String("relay.chain", "support")),
			)
			_, err := dispatch(t, func(context.Context, string) (string, error) {
				return "ok", tt.err
			}, "req", mw)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			span := spans[0]
			assert.Equal(t, "handle worker", span.Name())
			assert.Equal(t, tt.wantStatus, span.Status().Code)
			assert.Contains(t, span.Attributes(), attribute.String("relay.dispatch.id", "dispatch-1"))
			assert.Contains(t, span.Attributes(), attribute.String("relay.handler", "worker"))
			assert.Contains(t, span.Attributes(), attribute.String("relay.chain", "support"))
			if tt.err != nil {
				require.Len(t, span.Events(), 1)
				assert.Equal(t, "exception", span.Events()[0].Name)
			}
		})
	}
}

func TestTracingNilProvider(t *testing.T) {
	var mw relay.Middleware[string, string]
	require.NotPanics(t, func() {
		mw = Tracing[string, string](WithTracerProvider(nil))
	})
	out, err := dispatch(t, func(context.Context, string) (string, error) {
		return "ok", nil
	}, "req", mw)
	require.NoError(t, err)
	res, _ := out.Result()
	assert.Equal(t, "ok", res)
}
