package datetime

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	dateRe = regexp.MustCompile(`(?i)^(\d{1,4})(([.\-/ ] ?(\d{1,2})([.\-/ ] ?(\d{1,4}))?(?:$| +.*$))|$)`)
	timeRe = regexp.MustCompile(`(?i)^(0?\d|1\d|2[0-3]|am?|pm?)(([.: ](0?\d|[1-5]\d|am?|pm?)([.: ](0?\d|[1-5]\d|am?|pm?))?(?:$| +.*$))|$)`)

	// gluedPeriodRe splits a period marker from the number it is attached to ("2pm").
	gluedPeriodRe = regexp.MustCompile(`(?i)(\d)([ap]m?)\b`)
	periodRe      = regexp.MustCompile(`(?i)^(am?|pm?)$`)
)

// ParseDate reads one to three numeric components separated by '.', '-', '/' or a space.
//
// Three components follow cfg.DateCompsOrder, two follow the order with the year
// removed (the year defaults to the current one) and a single component is the day of
// the current month. Two-digit years are expanded around cfg.TwoDigitYearMax. Dates that
// would roll over (April 31) or fall outside the supported range are rejected.
// The result is tagged KindLocal. A nil cfg uses the built-in English culture data.
func ParseDate(s string, cfg *Config) (*DateTime, error) {
	cfg = configOrDefault(cfg)

	m := dateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, fmt.Errorf("%w: date %q", ErrParseFailed, s)
	}

	parts := []string{m[1]}
	if m[4] != "" {
		parts = append(parts, m[4])
	}
	if m[6] != "" {
		parts = append(parts, m[6])
	}

	now := Now()
	order := strings.ToLower(cfg.DateCompsOrder)
	if len(parts) == 2 {
		order = strings.Replace(order, "y", "", 1)
	}
	at := func(comp string) int {
		i := strings.Index(order, comp)
		if i < 0 || i >= len(parts) {
			return 0
		}
		v, _ := strconv.Atoi(parts[i])
		return v
	}

	year, month, day := now.Years(), now.Months(), 0
	switch len(parts) {
	case 3:
		year, month, day = at("y"), at("m"), at("d")
	case 2:
		month, day = at("m"), at("d")
	default:
		day, _ = strconv.Atoi(parts[0])
	}

	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, fmt.Errorf("%w: date %q out of range", ErrParseFailed, s)
	}
	if len(parts) == 3 && year < 100 {
		year = expandTwoDigitYear(year, cfg.TwoDigitYearMax)
	}

	date := New(year, month, day)
	if date.Years() != year || date.Months() != month || date.Days() != day {
		return nil, fmt.Errorf("%w: date %q does not exist", ErrParseFailed, s)
	}
	if date.ticks < cfg.MinSupportedDate.ticks || date.ticks > cfg.MaxSupportedDate.ticks {
		return nil, fmt.Errorf("%w: date %q outside supported range", ErrParseFailed, s)
	}
	return date, nil
}

// expandTwoDigitYear places a two-digit year in the century window ending at max.
func expandTwoDigitYear(year, max int) int {
	major := int(math.Floor(float64(max)/100+0.5)) * 100
	minor := max - major
	if year <= minor {
		return major + year
	}
	return major + year - 100
}

// ParseTime reads up to three tokens, each a number or an AM/PM marker ("a", "am",
// "p", "pm"), separated by '.', ':' or a space. Only the hour and minute are used.
//
// At most one marker is allowed and it may not be the middle of three tokens.
// "12 am" becomes 0:00, an hour below 12 with a PM marker gets 12 added, and an hour
// above 12 followed by an AM marker is rejected. The result carries only time fields
// on 1970-01-01 and is KindUnspecified.
func ParseTime(s string) (*DateTime, error) {
	input := gluedPeriodRe.ReplaceAllString(strings.TrimSpace(s), "$1 $2")

	m := timeRe.FindStringSubmatch(input)
	if m == nil {
		return nil, fmt.Errorf("%w: time %q", ErrParseFailed, s)
	}

	parts := []string{m[1]}
	if m[4] != "" {
		parts = append(parts, m[4])
	}
	if m[6] != "" {
		parts = append(parts, m[6])
	}

	var (
		numbers     []int
		periodCount int
		am          = true
	)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			am = strings.EqualFold(p[:1], "a")
			periodCount++
			if periodCount > 1 || (len(parts) == 3 && i == 1) {
				return nil, fmt.Errorf("%w: time %q has a misplaced AM/PM marker", ErrParseFailed, s)
			}
			continue
		}
		numbers = append(numbers, n)
	}

	if len(numbers) == 0 {
		return nil, fmt.Errorf("%w: time %q has no hour", ErrParseFailed, s)
	}

	hours, minutes := numbers[0], 0
	if len(numbers) > 1 {
		minutes = numbers[1]
	}

	if hours > 12 && periodCount > 0 && am {
		return nil, fmt.Errorf("%w: time %q is not a valid 12-hour time", ErrParseFailed, s)
	}
	if hours == 12 && periodCount > 0 && am {
		hours = 0
	}
	if hours < 12 && !am {
		hours += 12
	}

	return FromTicks(0).SetTime(hours, minutes, 0, 0), nil
}

// ParseDateTime splits free text into a date segment and a time segment and parses
// each with ParseDate and ParseTime.
//
// The time segment starts at the right-most token containing ':' unless a standalone
// AM/PM marker precedes it, in which case the marker starts it. A marker without any
// ':' token starts the time segment, or the token before it when the marker is last.
// With neither, the last token is the time (the last two when there are five or more
// tokens). A missing date segment means today. The result is KindUnspecified.
func ParseDateTime(s string, cfg *Config) (*DateTime, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty date/time", ErrParseFailed)
	}

	timeStart, period := -1, -1
	for i := len(parts) - 1; i >= 0; i-- {
		if timeStart < 0 && strings.Contains(parts[i], ":") {
			timeStart = i
		}
		if period < 0 && periodRe.MatchString(parts[i]) {
			period = i
		}
	}

	switch {
	case period >= 0 && timeStart >= 0 && period < timeStart:
		timeStart = period
	case period >= 0 && timeStart < 0:
		timeStart = period
		if period == len(parts)-1 {
			timeStart--
		}
	case timeStart < 0:
		switch {
		case len(parts) >= 5:
			timeStart = len(parts) - 2
		case len(parts) > 1:
			timeStart = len(parts) - 1
		default:
			timeStart = len(parts)
		}
	}
	if timeStart < 0 {
		timeStart = 0
	}

	dateParts, timeParts := parts[:timeStart], parts[timeStart:]

	var date *DateTime
	if len(dateParts) > 0 {
		var err error
		if date, err = ParseDate(strings.Join(dateParts, " "), cfg); err != nil {
			return nil, err
		}
	} else {
		date = Now().SetTime(0, 0, 0, 0)
	}

	if len(timeParts) > 0 {
		t, err := ParseTime(strings.Join(timeParts, " "))
		if err != nil {
			return nil, err
		}
		date.SetTimeFrom(t)
	}

	return date.SetKind(KindUnspecified), nil
}
