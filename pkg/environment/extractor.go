package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a logger context extractor that records the environment
// stored in ctx under "env". Aliases such as "prod" are logged by their canonical
// name; values Parse rejects are logged verbatim. Nothing is emitted when ctx carries
// no environment.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		env := FromContext(ctx)
		if env == "" {
			return slog.Attr{}, false
		}
		if canonical, err := Parse(string(env)); err == nil {
			env = canonical
		}
		return slog.String("env", env.String()), true
	}
}
