package middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-kratos/relay"
)

// MetricsOption defines options for the metrics middleware.
type MetricsOption func(*metricsConfig)

type metricsConfig struct {
	namespace  string
	registerer prometheus.Registerer
	buckets    []float64
}

// WithNamespace sets the metric namespace. Defaults to "relay".
func WithNamespace(namespace string) MetricsOption {
	return func(c *metricsConfig) {
		c.namespace = namespace
	}
}

// WithRegisterer sets the registry the collectors are registered on.
// Defaults to prometheus.DefaultRegisterer.
func WithRegisterer(r prometheus.Registerer) MetricsOption {
	return func(c *metricsConfig) {
		c.registerer = r
	}
}

// WithBuckets sets the histogram buckets of the action duration.
func WithBuckets(buckets ...float64) MetricsOption {
	return func(c *metricsConfig) {
		c.buckets = buckets
	}
}

// Metrics returns a middleware that counts handler actions by result and observes their duration.
// Collectors already registered with the same descriptors are reused.
func Metrics[Req, Res any](opts ...MetricsOption) (relay.Middleware[Req, Res], error) {
	c := &metricsConfig{
		namespace:  "relay",
		registerer: prometheus.DefaultRegisterer,
		buckets:    prometheus.DefBuckets,
	}
	for _, o := range opts {
		o(c)
	}
	handled, err := register(c.registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "handled_total",
		Help:      "Number of requests processed by a handler, by result.",
	}, []string{"handler", "result"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(c.registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      "handle_duration_seconds",
		Help:      "Duration of handler actions.",
		Buckets:   c.buckets,
	}, []string{"handler"}))
	if err != nil {
		return nil, err
	}
	return func(next relay.HandleFunc[Req, Res]) relay.HandleFunc[Req, Res] {
		return func(ctx context.Context, req Req) (Res, error) {
			var name string
			if dc, ok := relay.FromDispatchContext(ctx); ok {
				name = dc.Handler
			}
			start := time.Now()
			res, err := next(ctx, req)
			duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
			result := "ok"
			if err != nil {
				result = "error"
			}
			handled.WithLabelValues(name, result).Inc()
			return res, err
		}
	}, nil
}

func register[C prometheus.Collector](r prometheus.Registerer, c C) (C, error) {
	if err := r.Register(c); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return c, err
		}
		existing, ok := are.ExistingCollector.(C)
		if !ok {
			return c, err
		}
		return existing, nil
	}
	return c, nil
}
