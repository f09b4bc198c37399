package datetime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// relativeTimeWindow is 23:29:59.999 in milliseconds; beyond it no relative time phrase is used.
const relativeTimeWindow = int64(((23*60+29)*60+59)*1000 + 999)

const (
	secondsTierLimit = 59*1000 + 500
	minutesTierLimit = (59*60+29)*1000 + 500
)

// Humanized is the output of Humanize: a single line, or primary text and qualifier
// on separate lines.
type Humanized struct {
	Lines []string
}

// String joins the lines with a space.
func (h Humanized) String() string {
	return strings.Join(h.Lines, " ")
}

// Humanize renders the value relative to a reference instant, e.g. "4h ago",
// "yesterday, 3:15 PM" or "12 Mar 2019, 9:00 AM".
//
// Nil cfg and formats fall back to the built-in English data and its short phrases.
// Disabling both the date and the time part returns ErrInvalidArgument.
func (d *DateTime) Humanize(cfg *Config, formats *HumanizeFormats, opts ...HumanizeOption) (Humanized, error) {
	o := defaultHumanizeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.useDate && !o.useTime {
		return Humanized{}, fmt.Errorf("%w: humanize needs the date or the time part", ErrInvalidArgument)
	}

	cfg = configOrDefault(cfg)
	if formats == nil {
		short := DefaultLocale().Humanize.Short
		formats = &short
	}
	now := o.reference
	if now == nil {
		now = Now()
	}

	var dateStr, timeStr string

	if o.useDate {
		dateStr = d.datePhrase(now, cfg, formats)
	}

	if o.useTime {
		if c, _ := d.CompareFloor(now, UnitDay); c == 0 {
			dateStr = ""
		}

		left := d.Compare(now.AddTicks(-relativeTimeWindow))
		right := d.Compare(now.AddTicks(relativeTimeWindow))

		if left >= 0 && right <= 0 {
			dateStr = ""
			timeStr = relativeTimePhrase(d.ticks-now.ticks, formats)
		} else if o.alwaysWithTime {
			timeStr = d.Format(cfg.ShortTimePattern, cfg)
		}
	}

	sep := o.separator
	flatten := func(s string) string { return strings.Replace(s, sep, " ", 1) }

	if o.singleLine {
		if dateStr != "" && timeStr != "" {
			combined := strings.Replace(formats.DateTimeCombined, "{0}", flatten(dateStr), 1)
			combined = strings.Replace(combined, "{1}", flatten(timeStr), 1)
			return Humanized{Lines: []string{combined}}, nil
		}
		return Humanized{Lines: []string{flatten(dateStr) + flatten(timeStr)}}, nil
	}

	if dateStr != "" && timeStr != "" {
		return Humanized{Lines: []string{flatten(dateStr), flatten(timeStr)}}, nil
	}
	if dateStr != "" {
		return Humanized{Lines: strings.Split(dateStr, sep)}, nil
	}
	return Humanized{Lines: strings.Split(timeStr, sep)}, nil
}

// ToDisplayString humanizes the value against a reference pushed a century back, so
// only absolute date patterns are chosen regardless of the current date.
func (d *DateTime) ToDisplayString(cfg *Config, formats *HumanizeFormats, opts ...HumanizeOption) (Humanized, error) {
	cfg = configOrDefault(cfg)
	ref := Now().SetYears(cfg.TwoDigitYearMax - 100 - 1)
	opts = append(opts[:len(opts):len(opts)], WithReference(ref))
	return d.Humanize(cfg, formats, opts...)
}

func (d *DateTime) datePhrase(now *DateTime, cfg *Config, formats *HumanizeFormats) string {
	left, _ := d.CompareFloor(now.AddDays(-7), UnitDay)
	right, _ := d.CompareFloor(now.AddDays(7), UnitDay)

	if left >= 0 && right <= 0 {
		named := map[int]string{
			-7: formats.DateWeekAgo,
			-1: formats.DateYesterday,
			0:  formats.DateToday,
			1:  formats.DateTomorrow,
			7:  formats.DateInWeek,
		}
		for offset := -7; offset <= 7; offset++ {
			if c, _ := d.CompareFloor(now.AddDays(offset), UnitDay); c != 0 {
				continue
			}
			if phrase := named[offset]; phrase != "" {
				return phrase
			}
			if offset < 0 {
				return strings.Replace(formats.DateDaysAgo, "{0}", strconv.Itoa(-offset), 1)
			}
			return strings.Replace(formats.DateInDays, "{0}", strconv.Itoa(offset), 1)
		}
		return ""
	}

	year := d.Years()
	switch {
	case year == now.Years():
		return d.Format(cfg.AbbreviatedMonthDayPattern, cfg)
	case year > cfg.TwoDigitYearMax-100 && year <= cfg.TwoDigitYearMax:
		return d.Format(cfg.AbbreviatedShortDatePattern, cfg)
	default:
		return d.Format(cfg.AbbreviatedDatePattern, cfg)
	}
}

func relativeTimePhrase(diff int64, f *HumanizeFormats) string {
	abs := diff
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs < secondsTierLimit:
		return pickPhrase(roundUnits(diff, 1000), f.TimeSecondAgo, f.TimeInSecond, f.TimeSecondsAgo, f.TimeInSeconds)
	case abs < minutesTierLimit:
		return pickPhrase(roundUnits(diff, 60*1000), f.TimeMinuteAgo, f.TimeInMinute, f.TimeMinutesAgo, f.TimeInMinutes)
	default:
		return pickPhrase(roundUnits(diff, 60*60*1000), f.TimeHourAgo, f.TimeInHour, f.TimeHoursAgo, f.TimeInHours)
	}
}

// roundUnits divides and rounds half away from zero.
func roundUnits(ms, unit int64) int64 {
	return int64(math.Round(float64(ms) / float64(unit)))
}

func pickPhrase(val int64, agoOne, inOne, agoMany, inMany string) string {
	switch {
	case val >= -1 && val <= 0:
		return agoOne
	case val == 1:
		return inOne
	case val < 0:
		return strings.Replace(agoMany, "{0}", strconv.FormatInt(-val, 10), 1)
	default:
		return strings.Replace(inMany, "{0}", strconv.FormatInt(val, 10), 1)
	}
}
