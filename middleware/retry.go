package middleware

import (
	"context"

	"github.com/go-kratos/kit/retry"

	"github.com/go-kratos/relay"
)

// Retry returns a middleware that retries a failing handler action.
//
// Parameters:
//
//	attempts: The total number of attempts to execute the action, including the initial attempt.
//	          For example, attempts=3 means up to 3 tries (1 initial + 2 retries).
//	opts:     Optional configuration for retry behavior. See retry.Option (from github.com/go-kratos/kit/retry) for details.
//
// Behavior:
//   - Only the action of the handler that matched is retried; predicates are not re-evaluated
//     and no other handler of the chain is consulted.
//   - The same request is passed on each attempt. Actions must not mutate it.
//   - If all attempts are exhausted, the last error is returned.
//   - Context cancellation is respected between attempts.
//
// Example usage:
//
//	mw := Retry[Ticket, string](5,
//	    retry.WithBackoff(retry.NewExponentialBackoff()),
//	    retry.WithRetryable(func(err error) bool {
//	        return errors.Is(err, ErrTemporary)
//	    }),
//	)
func Retry[Req, Res any](attempts int, opts ...retry.Option) relay.Middleware[Req, Res] {
	r := retry.New(attempts, opts...)
	return func(next relay.HandleFunc[Req, Res]) relay.HandleFunc[Req, Res] {
		return func(ctx context.Context, req Req) (Res, error) {
			var (
				err    error
				output Res
			)
			if err = r.Do(ctx, func(ctx context.Context) error {
				output, err = next(ctx, req)
				return err
			}); err != nil {
				var zero Res
				return zero, err
			}
			return output, nil
		}
	}
}
