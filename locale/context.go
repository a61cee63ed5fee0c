package locale

import (
	"context"
	"strings"
)

type contextKey string

const currentLocaleKey contextKey = "translatable.locale.current"

// WithCurrent returns a context carrying the ambient locale used when no
// explicit locale is passed to a resolution call.
func WithCurrent(ctx context.Context, code string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return ctx
	}
	return context.WithValue(ctx, currentLocaleKey, code)
}

// Current returns the ambient locale from the context. Callers must read it
// at the moment of resolution rather than cache it, since the ambient locale
// may change between two resolutions on the same record.
func Current(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if code, ok := ctx.Value(currentLocaleKey).(string); ok {
		return code
	}
	return ""
}
