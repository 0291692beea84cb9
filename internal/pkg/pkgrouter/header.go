package pkgrouter

import (
	"context"
	"net/http"
)

type headerContextKey struct{}

// middlewareHeaderStage exposes the response headers to handlers through the
// request context, see SetHeader.
func middlewareHeaderStage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), headerContextKey{}, w.Header())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetHeader stages a response header from inside a Handler. Staged headers are
// sent with the response whether the handler succeeds or returns an error.
//
// It is a no-op when ctx does not come from a request served by Router.
func SetHeader(ctx context.Context, key, value string) {
	if h, ok := ctx.Value(headerContextKey{}).(http.Header); ok {
		h.Set(key, value)
	}
}
