package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-kratos/relay"
)

// Logging returns a middleware that logs every handler action.
// Successful actions are logged at debug level and failures at error level.
// A nil logger uses slog.Default.
func Logging[Req, Res any](logger *slog.Logger) relay.Middleware[Req, Res] {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next relay.HandleFunc[Req, Res]) relay.HandleFunc[Req, Res] {
		return func(ctx context.Context, req Req) (Res, error) {
			start := time.Now()
			res, err := next(ctx, req)

			attrs := []any{"duration", time.Since(start)}
			if dc, ok := relay.FromDispatchContext(ctx); ok {
				attrs = append(attrs, "dispatch_id", dc.ID, "handler", dc.Handler)
			}
			if err != nil {
				logger.ErrorContext(ctx, "handler failed", append(attrs, "error", err.Error())...)
				return res, err
			}
			logger.DebugContext(ctx, "handled request", attrs...)
			return res, nil
		}
	}
}
