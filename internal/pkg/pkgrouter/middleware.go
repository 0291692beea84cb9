package pkgrouter

import (
	"context"
	"net/http"
)

// Middleware wraps an http.Handler, typically to add cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in order, returning the final wrapped handler.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// routeNotFound labels requests that matched no route in logs and metrics.
const routeNotFound = "NOT_FOUND"

type routeContextKey struct{}

func withRoute(ctx context.Context, pattern string) context.Context {
	return context.WithValue(ctx, routeContextKey{}, pattern)
}

// routed records the registered route pattern before running h.
func routed(pattern string, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r.WithContext(withRoute(r.Context(), pattern)))
	})
}

// RoutePattern returns the registered pattern of the route serving the request
// (for example "/notes/:id"), or the raw path when unknown.
func RoutePattern(r *http.Request) string {
	if pattern, ok := r.Context().Value(routeContextKey{}).(string); ok && pattern != "" {
		return pattern
	}
	return r.URL.Path
}
