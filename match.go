package relay

import "context"

// Always returns a predicate that matches every request.
// It is typically used for a catch-all handler at the end of a chain.
func Always[Req any]() MatchFunc[Req] {
	return func(context.Context, Req) bool { return true }
}

// Never returns a predicate that matches no request.
func Never[Req any]() MatchFunc[Req] {
	return func(context.Context, Req) bool { return false }
}

// And matches when every predicate matches. Predicates are evaluated in order
// and evaluation stops at the first one that does not match.
func And[Req any](ms ...MatchFunc[Req]) MatchFunc[Req] {
	return func(ctx context.Context, req Req) bool {
		for _, m := range ms {
			if !m(ctx, req) {
				return false
			}
		}
		return true
	}
}

// Or matches when any predicate matches, stopping at the first match.
func Or[Req any](ms ...MatchFunc[Req]) MatchFunc[Req] {
	return func(ctx context.Context, req Req) bool {
		for _, m := range ms {
			if m(ctx, req) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not[Req any](m MatchFunc[Req]) MatchFunc[Req] {
	return func(ctx context.Context, req Req) bool {
		return !m(ctx, req)
	}
}
