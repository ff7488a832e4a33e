// Package correlation carries a request's correlation id through a context
// so every layer can tag logs and events with it.
package correlation

import "context"

type ctxKey struct{}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// ID returns the correlation id stored on ctx, or "" when there is none.
func ID(ctx context.Context) string {
	if s, ok := ctx.Value(ctxKey{}).(string); ok {
		return s
	}
	return ""
}
