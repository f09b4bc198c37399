package datetime

import (
	"fmt"
	"strings"
)

// RangeOption configures ShortenedRangeText.
type RangeOption func(*rangeOptions)

type rangeOptions struct {
	reference *DateTime
}

// WithRangeReference sets the instant whose year decides how much of each date is shown.
// Defaults to Now(). Nil values are ignored.
func WithRangeReference(ref *DateTime) RangeOption {
	return func(o *rangeOptions) {
		if ref != nil {
			o.reference = ref
		}
	}
}

// ShortenedRangeText renders a compact description of the range [from, to], such as
// "from 3/4 9:00 AM to 11:30 AM" or "to 3/7". Either endpoint may be nil.
//
// In ModeDateTime both endpoints are converted to local time first. A "to" on the same
// day as "from" is shown as a time only. A midnight endpoint of a range spanning at
// least one whole day is shown as a date only, and a midnight "to" shows the previous
// day since whole-day ranges end exclusively.
//
// Nil cfg and formats fall back to the built-in English data. An unknown mode returns
// ErrInvalidArgument.
func ShortenedRangeText(from, to *DateTime, mode Mode, cfg *Config, formats *RangeFormats, opts ...RangeOption) (string, error) {
	if mode != ModeDateTime && mode != ModeDate && mode != ModeTime {
		return "", fmt.Errorf("%w: unknown range mode %d", ErrInvalidArgument, int(mode))
	}
	// An empty range has no text, not a bare "to".
	if from == nil && to == nil {
		return "", nil
	}

	o := rangeOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	now := o.reference
	if now == nil {
		now = Now()
	}

	cfg = configOrDefault(cfg)
	if formats == nil {
		r := DefaultLocale().Range
		formats = &r
	}

	if mode == ModeDateTime {
		if from != nil {
			from = from.ToLocalTime()
		}
		if to != nil {
			to = to.ToLocalTime()
		}
	}

	fromFormat, toFormat, rangeFormat := formats.DateTimeFromFormat, formats.DateTimeToFormat, formats.DateTimeRangeFormat
	if mode == ModeTime {
		fromFormat, toFormat, rangeFormat = formats.TimeFromFormat, formats.TimeToFormat, formats.TimeRangeFormat
	}

	formatDate := func(dt *DateTime) string {
		year := dt.Years()
		switch {
		case year == now.Years():
			return dt.Format(cfg.ShortMonthDayPattern, cfg)
		case year > cfg.TwoDigitYearMax-100 && year <= cfg.TwoDigitYearMax:
			return dt.Format(cfg.ShortestDatePattern, cfg)
		default:
			return dt.Format(cfg.ShortDatePattern, cfg)
		}
	}
	formatTime := func(dt *DateTime) string {
		return dt.Format(cfg.ShortTimePattern, cfg)
	}

	formatValue := func(dt *DateTime, isTo bool) string {
		sub := mode
		if mode == ModeDateTime {
			sameDay := false
			if from != nil && to != nil && isTo && from.Compare(to) != 0 {
				c, _ := from.CompareFloor(to, UnitDay)
				sameDay = c == 0
			}
			switch {
			case sameDay:
				sub = ModeTime
			case dt.TimePart().Ticks() == 0 && (from == nil || to == nil || to.Compare(from.AddDays(1)) >= 0):
				sub = ModeDate
				if isTo {
					dt = to.AddDays(-1)
				}
			}
		}

		switch sub {
		case ModeDate:
			return formatDate(dt)
		case ModeTime:
			return formatTime(dt)
		default:
			return formatDate(dt) + " " + formatTime(dt)
		}
	}

	var text string
	switch {
	case from != nil && to != nil:
		fromText, toText := formatValue(from, false), formatValue(to, true)
		if fromText == toText {
			text = fromText
		} else {
			text = strings.Replace(rangeFormat, "{0}", fromText, 1)
			text = strings.Replace(text, "{1}", toText, 1)
		}
	case from != nil:
		text = strings.Replace(fromFormat, "{0}", formatValue(from, false), 1)
	default:
		text = strings.Replace(toFormat, "{0}", formatValue(to, true), 1)
	}

	text = strings.Replace(text, "{1}", "", 1)
	text = strings.Replace(text, "{2}", "", 1)
	return strings.TrimSpace(text), nil
}
