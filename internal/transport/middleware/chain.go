package middleware

import "net/http"

// Middleware wraps an http.Handler with a cross-cutting concern such as
// auth, request IDs or rate limiting.
type Middleware func(http.Handler) http.Handler

// Chain folds several middleware into one, applied in the order given:
// Chain(mw1, mw2)(h) is mw1(mw2(h)), so the first argument runs outermost.
// The router relies on this when it keeps Auth outside Logger.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
