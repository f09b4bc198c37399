package locale

import (
	"context"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

type localeContextKey struct{}

// WithLocale stores loc in the context.
func WithLocale(ctx context.Context, loc *datetime.Locale) context.Context {
	return context.WithValue(ctx, localeContextKey{}, loc)
}

// FromContext returns the locale stored in the context, or the built-in English
// locale when none is set.
func FromContext(ctx context.Context) *datetime.Locale {
	if ctx != nil {
		if loc, ok := ctx.Value(localeContextKey{}).(*datetime.Locale); ok && loc != nil {
			return loc
		}
	}
	return datetime.DefaultLocale()
}
