package pkglog

import "context"

type correlationKey struct{}

// SetCorrelationID returns a copy of ctx carrying cid.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationKey{}, cid)
}

// CorrelationID returns the correlation id stored in ctx, if any.
func CorrelationID(ctx context.Context) (string, bool) {
	cid, ok := ctx.Value(correlationKey{}).(string)
	return cid, ok && cid != ""
}
