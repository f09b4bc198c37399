package datetime

import (
	"fmt"
	"strings"
)

// Config holds the culture data used for formatting and parsing.
type Config struct {
	// DateCompsOrder is a permutation of "dmy" giving the order of numeric date components.
	DateCompsOrder string

	DayNames              []string
	AbbreviatedDayNames   []string
	MonthNames            []string
	AbbreviatedMonthNames []string

	ShortDatePattern            string
	ShortestDatePattern         string
	ShortMonthDayPattern        string
	ShortTimePattern            string
	ShortDateTimePattern        string
	AbbreviatedDatePattern      string
	AbbreviatedShortDatePattern string
	AbbreviatedMonthDayPattern  string

	// MinSupportedDate and MaxSupportedDate bound the values ParseDate accepts.
	MinSupportedDate DateTime
	MaxSupportedDate DateTime

	// TwoDigitYearMax is the last year a two-digit year may expand to.
	TwoDigitYearMax int
}

// HumanizeFormats are the phrase templates used by Humanize. Templates use {0}
// placeholders and split primary text from its qualifier with "|", e.g. "{0}h|ago".
type HumanizeFormats struct {
	DateDaysAgo      string
	DateInDays       string
	DateInWeek       string
	DateTimeAndZone  string
	DateTimeCombined string
	DateToday        string
	DateTomorrow     string
	DateWeekAgo      string
	DateYesterday    string
	LocalLabel       string
	TimeHourAgo      string
	TimeHoursAgo     string
	TimeInHour       string
	TimeInHours      string
	TimeInMinute     string
	TimeInMinutes    string
	TimeInSecond     string
	TimeInSeconds    string
	TimeMinuteAgo    string
	TimeMinutesAgo   string
	TimeSecondAgo    string
	TimeSecondsAgo   string
	UTCLabel         string
}

// RangeFormats are the templates used by ShortenedRangeText.
type RangeFormats struct {
	DateTimeFromFormat  string
	DateTimeToFormat    string
	DateTimeRangeFormat string
	TimeFromFormat      string
	TimeToFormat        string
	TimeRangeFormat     string
}

// HumanizeSet groups the two humanize variants a locale provides.
type HumanizeSet struct {
	Short HumanizeFormats
	Full  HumanizeFormats
}

// Locale bundles every piece of culture data for one language.
type Locale struct {
	Name     string
	Config   Config
	Humanize HumanizeSet
	Range    RangeFormats
}

// Validate checks the structural requirements the formatting and parsing code relies on.
func (l *Locale) Validate() error {
	c := &l.Config
	if len(c.DayNames) != 7 || len(c.AbbreviatedDayNames) != 7 {
		return fmt.Errorf("%w: locale %q: day names must have 7 entries", ErrInvalidArgument, l.Name)
	}
	if len(c.MonthNames) != 12 || len(c.AbbreviatedMonthNames) != 12 {
		return fmt.Errorf("%w: locale %q: month names must have 12 entries", ErrInvalidArgument, l.Name)
	}
	order := strings.ToLower(c.DateCompsOrder)
	if len(order) != 3 || !strings.Contains(order, "d") || !strings.Contains(order, "m") || !strings.Contains(order, "y") {
		return fmt.Errorf("%w: locale %q: date component order %q is not a permutation of dmy", ErrInvalidArgument, l.Name, c.DateCompsOrder)
	}
	if c.MinSupportedDate.ticks > c.MaxSupportedDate.ticks {
		return fmt.Errorf("%w: locale %q: min supported date is after max", ErrInvalidArgument, l.Name)
	}
	return nil
}

// DefaultLocale returns a fresh copy of the built-in English locale.
func DefaultLocale() *Locale {
	return &Locale{
		Name:   "en",
		Config: englishConfig(),
		Humanize: HumanizeSet{
			Short: HumanizeFormats{
				DateDaysAgo:      "{0}d|ago",
				DateInDays:       "in|{0}d",
				DateInWeek:       "in a|week",
				DateTimeAndZone:  "{0} ({1})",
				DateTimeCombined: "{0}, {1}",
				DateToday:        "today",
				DateTomorrow:     "tomorrow",
				DateWeekAgo:      "a week|ago",
				DateYesterday:    "yesterday",
				LocalLabel:       "local",
				TimeHourAgo:      "1h|ago",
				TimeHoursAgo:     "{0}h|ago",
				TimeInHour:       "in|1h",
				TimeInHours:      "in|{0}h",
				TimeInMinute:     "in|1m",
				TimeInMinutes:    "in|{0}m",
				TimeInSecond:     "in|1s",
				TimeInSeconds:    "in|{0}s",
				TimeMinuteAgo:    "1m|ago",
				TimeMinutesAgo:   "{0}m|ago",
				TimeSecondAgo:    "1s|ago",
				TimeSecondsAgo:   "{0}s|ago",
				UTCLabel:         "utc",
			},
			Full: HumanizeFormats{
				DateDaysAgo:      "{0} days|ago",
				DateInDays:       "in {0}|days",
				DateInWeek:       "in a|week",
				DateTimeAndZone:  "{0} ({1})",
				DateTimeCombined: "{0}, {1}",
				DateToday:        "today",
				DateTomorrow:     "tomorrow",
				DateWeekAgo:      "a week|ago",
				DateYesterday:    "yesterday",
				LocalLabel:       "local",
				TimeHourAgo:      "an hour|ago",
				TimeHoursAgo:     "{0} hours|ago",
				TimeInHour:       "in an|hour",
				TimeInHours:      "in {0}|hours",
				TimeInMinute:     "in a|minute",
				TimeInMinutes:    "in {0}|minutes",
				TimeInSecond:     "in a|second",
				TimeInSeconds:    "in {0}|seconds",
				TimeMinuteAgo:    "a minute|ago",
				TimeMinutesAgo:   "{0} minutes|ago",
				TimeSecondAgo:    "a second|ago",
				TimeSecondsAgo:   "{0} seconds|ago",
				UTCLabel:         "utc",
			},
		},
		Range: RangeFormats{
			DateTimeFromFormat:  "from {0} {1}",
			DateTimeToFormat:    "to {0} {1}",
			DateTimeRangeFormat: "from {0} to {1} {2}",
			TimeFromFormat:      "from {0} {1}",
			TimeToFormat:        "to {0} {1}",
			TimeRangeFormat:     "from {0} to {1} {2}",
		},
	}
}

func englishConfig() Config {
	return Config{
		DateCompsOrder:              "mdy",
		DayNames:                    []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		AbbreviatedDayNames:         []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		MonthNames:                  []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		AbbreviatedMonthNames:       []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		ShortDatePattern:            "M/d/yyyy",
		ShortestDatePattern:         "M/d/yy",
		ShortMonthDayPattern:        "M/d",
		ShortTimePattern:            "h:mm tt",
		ShortDateTimePattern:        "M/d/yyyy h:mm tt",
		AbbreviatedDatePattern:      "d MMM yyyy",
		AbbreviatedShortDatePattern: "d MMM yyyy",
		AbbreviatedMonthDayPattern:  "d MMM",
		MinSupportedDate:            DateTime{ticks: compose(0, 1, 1, 0, 0, 0, 0), kind: KindUTC},
		MaxSupportedDate:            DateTime{ticks: compose(9999, 12, 31, 23, 59, 59, 999), kind: KindUTC},
		TwoDigitYearMax:             2029,
	}
}

func configOrDefault(cfg *Config) *Config {
	if cfg != nil {
		return cfg
	}
	c := englishConfig()
	return &c
}
