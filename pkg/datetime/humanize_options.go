package datetime

// HumanizeOption configures Humanize and ToDisplayString.
type HumanizeOption func(*humanizeOptions)

type humanizeOptions struct {
	useDate        bool
	useTime        bool
	alwaysWithTime bool
	singleLine     bool
	separator      string
	reference      *DateTime
}

func defaultHumanizeOptions() humanizeOptions {
	return humanizeOptions{
		useDate:        true,
		useTime:        true,
		alwaysWithTime: true,
		singleLine:     true,
		separator:      "|",
	}
}

// WithDate toggles the date phrase. Enabled by default.
func WithDate(enabled bool) HumanizeOption {
	return func(o *humanizeOptions) { o.useDate = enabled }
}

// WithTime toggles the time phrase. Enabled by default.
func WithTime(enabled bool) HumanizeOption {
	return func(o *humanizeOptions) { o.useTime = enabled }
}

// WithAlwaysTime renders the absolute short time when the value is too far away for a
// relative time phrase. Enabled by default.
func WithAlwaysTime(enabled bool) HumanizeOption {
	return func(o *humanizeOptions) { o.alwaysWithTime = enabled }
}

// WithSingleLine selects one-line output. When disabled the result holds the primary
// text and its qualifier as separate lines. Enabled by default.
func WithSingleLine(enabled bool) HumanizeOption {
	return func(o *humanizeOptions) { o.singleLine = enabled }
}

// WithSeparator sets the marker splitting phrase templates into primary text and
// qualifier. Defaults to "|".
func WithSeparator(sep string) HumanizeOption {
	return func(o *humanizeOptions) { o.separator = sep }
}

// WithReference sets the instant phrases are relative to. Defaults to Now().
// Nil values are ignored.
func WithReference(ref *DateTime) HumanizeOption {
	return func(o *humanizeOptions) {
		if ref != nil {
			o.reference = ref
		}
	}
}
