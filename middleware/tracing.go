package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-kratos/relay"
)

const (
	traceScope = "github.com/go-kratos/relay"
)

// TraceOption defines options for the tracing middleware.
type TraceOption func(*tracing)

// tracing holds configuration for the tracing middleware.
type tracing struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

// WithTracerProvider sets a custom TracerProvider for the tracing middleware.
// A nil provider keeps the global one.
func WithTracerProvider(tp trace.TracerProvider) TraceOption {
	return func(t *tracing) {
		if tp == nil {
			return
		}
		t.tracer = tp.Tracer(traceScope)
	}
}

// WithAttributes adds static attributes to every span, e.g. the name of the chain.
func WithAttributes(attrs ...attribute.KeyValue) TraceOption {
	return func(t *tracing) {
		t.attrs = append(t.attrs, attrs...)
	}
}

// Tracing returns a middleware that records an OpenTelemetry span around each handler action.
func Tracing[Req, Res any](opts ...TraceOption) relay.Middleware[Req, Res] {
	t := &tracing{
		tracer: otel.GetTracerProvider().Tracer(traceScope),
	}
	for _, o := range opts {
		o(t)
	}
	return func(next relay.HandleFunc[Req, Res]) relay.HandleFunc[Req, Res] {
		return func(ctx context.Context, req Req) (Res, error) {
			ctx, span := t.start(ctx)
			res, err := next(ctx, req)
			t.end(span, err)
			return res, err
		}
	}
}

func (t *tracing) start(ctx context.Context) (context.Context, trace.Span) {
	name := "handle"
	attrs := append([]attribute.KeyValue{}, t.attrs...)
	if dc, ok := relay.FromDispatchContext(ctx); ok {
		name = "handle " + dc.Handler
		attrs = append(attrs,
			attribute.String("relay.dispatch.id", dc.ID),
			attribute.String("relay.handler", dc.Handler),
		)
	}
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (t *tracing) end(span trace.Span, err error) {
	defer span.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
