package locale

import "log/slog"

// Option configures a Registry.
type Option func(*Registry)

// WithAdapter adds a locale source. Adapters load in the order given; a later
// locale replaces an earlier one with the same tag. Nil adapters are ignored.
func WithAdapter(a Adapter) Option {
	return func(r *Registry) {
		if a != nil {
			r.adapters = append(r.adapters, a)
		}
	}
}

// WithDefault sets the tag Get falls back to. Defaults to "en".
func WithDefault(tag string) Option {
	return func(r *Registry) {
		if tag != "" {
			r.defaultTag = tag
		}
	}
}

// WithLogger provides a logger for load and fallback events.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}
