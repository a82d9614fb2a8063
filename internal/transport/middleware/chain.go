package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one is outermost:
// Chain(a, b)(h) == a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}

// Route wraps a single handler func, for per-route guards such as
// RequireAuth followed by a rate limit.
func Route(h http.HandlerFunc, mws ...Middleware) http.Handler {
	return Chain(mws...)(h)
}
