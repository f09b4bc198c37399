package locale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

// supportedDateMask renders supported-date bounds in a form datetime.Parse reads back.
const supportedDateMask = "yyyy-MM-dd'T'HH:mm:ss.l"

// File is the on-disk schema of a locale, shared by the YAML, JSON and TOML parsers.
// Every field is optional except Name; empty fields keep the English value.
type File struct {
	Name     string          `yaml:"name" json:"name" toml:"name"`
	Config   ConfigSection   `yaml:"config,omitempty" json:"config,omitempty" toml:"config,omitempty"`
	Humanize HumanizeSection `yaml:"humanize,omitempty" json:"humanize,omitempty" toml:"humanize,omitempty"`
	Range    RangeSection    `yaml:"range,omitempty" json:"range,omitempty" toml:"range,omitempty"`
}

// ConfigSection mirrors datetime.Config. Supported dates are strings in any format
// datetime.Parse accepts.
type ConfigSection struct {
	DateCompsOrder              string   `yaml:"date_comps_order,omitempty" json:"date_comps_order,omitempty" toml:"date_comps_order,omitempty"`
	DayNames                    []string `yaml:"day_names,omitempty" json:"day_names,omitempty" toml:"day_names,omitempty"`
	AbbreviatedDayNames         []string `yaml:"abbreviated_day_names,omitempty" json:"abbreviated_day_names,omitempty" toml:"abbreviated_day_names,omitempty"`
	MonthNames                  []string `yaml:"month_names,omitempty" json:"month_names,omitempty" toml:"month_names,omitempty"`
	AbbreviatedMonthNames       []string `yaml:"abbreviated_month_names,omitempty" json:"abbreviated_month_names,omitempty" toml:"abbreviated_month_names,omitempty"`
	ShortDatePattern            string   `yaml:"short_date_pattern,omitempty" json:"short_date_pattern,omitempty" toml:"short_date_pattern,omitempty"`
	ShortestDatePattern         string   `yaml:"shortest_date_pattern,omitempty" json:"shortest_date_pattern,omitempty" toml:"shortest_date_pattern,omitempty"`
	ShortMonthDayPattern        string   `yaml:"short_month_day_pattern,omitempty" json:"short_month_day_pattern,omitempty" toml:"short_month_day_pattern,omitempty"`
	ShortTimePattern            string   `yaml:"short_time_pattern,omitempty" json:"short_time_pattern,omitempty" toml:"short_time_pattern,omitempty"`
	ShortDateTimePattern        string   `yaml:"short_date_time_pattern,omitempty" json:"short_date_time_pattern,omitempty" toml:"short_date_time_pattern,omitempty"`
	AbbreviatedDatePattern      string   `yaml:"abbreviated_date_pattern,omitempty" json:"abbreviated_date_pattern,omitempty" toml:"abbreviated_date_pattern,omitempty"`
	AbbreviatedShortDatePattern string   `yaml:"abbreviated_short_date_pattern,omitempty" json:"abbreviated_short_date_pattern,omitempty" toml:"abbreviated_short_date_pattern,omitempty"`
	AbbreviatedMonthDayPattern  string   `yaml:"abbreviated_month_day_pattern,omitempty" json:"abbreviated_month_day_pattern,omitempty" toml:"abbreviated_month_day_pattern,omitempty"`
	MinSupportedDate            string   `yaml:"min_supported_date,omitempty" json:"min_supported_date,omitempty" toml:"min_supported_date,omitempty"`
	MaxSupportedDate            string   `yaml:"max_supported_date,omitempty" json:"max_supported_date,omitempty" toml:"max_supported_date,omitempty"`
	TwoDigitYearMax             int      `yaml:"two_digit_year_max,omitempty" json:"two_digit_year_max,omitempty" toml:"two_digit_year_max,omitempty"`
}

// HumanizeSection holds both phrase variants.
type HumanizeSection struct {
	Short PhraseSection `yaml:"short,omitempty" json:"short,omitempty" toml:"short,omitempty"`
	Full  PhraseSection `yaml:"full,omitempty" json:"full,omitempty" toml:"full,omitempty"`
}

// PhraseSection mirrors datetime.HumanizeFormats.
type PhraseSection struct {
	DateDaysAgo      string `yaml:"date_days_ago,omitempty" json:"date_days_ago,omitempty" toml:"date_days_ago,omitempty"`
	DateInDays       string `yaml:"date_in_days,omitempty" json:"date_in_days,omitempty" toml:"date_in_days,omitempty"`
	DateInWeek       string `yaml:"date_in_week,omitempty" json:"date_in_week,omitempty" toml:"date_in_week,omitempty"`
	DateTimeAndZone  string `yaml:"date_time_and_zone,omitempty" json:"date_time_and_zone,omitempty" toml:"date_time_and_zone,omitempty"`
	DateTimeCombined string `yaml:"date_time_combined,omitempty" json:"date_time_combined,omitempty" toml:"date_time_combined,omitempty"`
	DateToday        string `yaml:"date_today,omitempty" json:"date_today,omitempty" toml:"date_today,omitempty"`
	DateTomorrow     string `yaml:"date_tomorrow,omitempty" json:"date_tomorrow,omitempty" toml:"date_tomorrow,omitempty"`
	DateWeekAgo      string `yaml:"date_week_ago,omitempty" json:"date_week_ago,omitempty" toml:"date_week_ago,omitempty"`
	DateYesterday    string `yaml:"date_yesterday,omitempty" json:"date_yesterday,omitempty" toml:"date_yesterday,omitempty"`
	LocalLabel       string `yaml:"local_label,omitempty" json:"local_label,omitempty" toml:"local_label,omitempty"`
	TimeHourAgo      string `yaml:"time_hour_ago,omitempty" json:"time_hour_ago,omitempty" toml:"time_hour_ago,omitempty"`
	TimeHoursAgo     string `yaml:"time_hours_ago,omitempty" json:"time_hours_ago,omitempty" toml:"time_hours_ago,omitempty"`
	TimeInHour       string `yaml:"time_in_hour,omitempty" json:"time_in_hour,omitempty" toml:"time_in_hour,omitempty"`
	TimeInHours      string `yaml:"time_in_hours,omitempty" json:"time_in_hours,omitempty" toml:"time_in_hours,omitempty"`
	TimeInMinute     string `yaml:"time_in_minute,omitempty" json:"time_in_minute,omitempty" toml:"time_in_minute,omitempty"`
	TimeInMinutes    string `yaml:"time_in_minutes,omitempty" json:"time_in_minutes,omitempty" toml:"time_in_minutes,omitempty"`
	TimeInSecond     string `yaml:"time_in_second,omitempty" json:"time_in_second,omitempty" toml:"time_in_second,omitempty"`
	TimeInSeconds    string `yaml:"time_in_seconds,omitempty" json:"time_in_seconds,omitempty" toml:"time_in_seconds,omitempty"`
	TimeMinuteAgo    string `yaml:"time_minute_ago,omitempty" json:"time_minute_ago,omitempty" toml:"time_minute_ago,omitempty"`
	TimeMinutesAgo   string `yaml:"time_minutes_ago,omitempty" json:"time_minutes_ago,omitempty" toml:"time_minutes_ago,omitempty"`
	TimeSecondAgo    string `yaml:"time_second_ago,omitempty" json:"time_second_ago,omitempty" toml:"time_second_ago,omitempty"`
	TimeSecondsAgo   string `yaml:"time_seconds_ago,omitempty" json:"time_seconds_ago,omitempty" toml:"time_seconds_ago,omitempty"`
	UTCLabel         string `yaml:"utc_label,omitempty" json:"utc_label,omitempty" toml:"utc_label,omitempty"`
}

// RangeSection mirrors datetime.RangeFormats.
type RangeSection struct {
	DateTimeFromFormat  string `yaml:"date_time_from_format,omitempty" json:"date_time_from_format,omitempty" toml:"date_time_from_format,omitempty"`
	DateTimeToFormat    string `yaml:"date_time_to_format,omitempty" json:"date_time_to_format,omitempty" toml:"date_time_to_format,omitempty"`
	DateTimeRangeFormat string `yaml:"date_time_range_format,omitempty" json:"date_time_range_format,omitempty" toml:"date_time_range_format,omitempty"`
	TimeFromFormat      string `yaml:"time_from_format,omitempty" json:"time_from_format,omitempty" toml:"time_from_format,omitempty"`
	TimeToFormat        string `yaml:"time_to_format,omitempty" json:"time_to_format,omitempty" toml:"time_to_format,omitempty"`
	TimeRangeFormat     string `yaml:"time_range_format,omitempty" json:"time_range_format,omitempty" toml:"time_range_format,omitempty"`
}

// Locale converts the file into a validated locale, filling gaps from English.
func (f File) Locale() (*datetime.Locale, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, ErrMissingName
	}

	loc := datetime.DefaultLocale()
	loc.Name = name

	if err := f.Config.apply(&loc.Config); err != nil {
		return nil, errors.Join(ErrInvalidLocale, fmt.Errorf("locale %q: %w", name, err))
	}
	f.Humanize.Short.apply(&loc.Humanize.Short)
	f.Humanize.Full.apply(&loc.Humanize.Full)
	f.Range.apply(&loc.Range)

	if err := loc.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidLocale, err)
	}
	return loc, nil
}

// NewFile renders a locale back into the file schema, with every field populated.
func NewFile(loc *datetime.Locale) File {
	c, s, l, r := &loc.Config, &loc.Humanize.Short, &loc.Humanize.Full, &loc.Range
	return File{
		Name: loc.Name,
		Config: ConfigSection{
			DateCompsOrder:              c.DateCompsOrder,
			DayNames:                    c.DayNames,
			AbbreviatedDayNames:         c.AbbreviatedDayNames,
			MonthNames:                  c.MonthNames,
			AbbreviatedMonthNames:       c.AbbreviatedMonthNames,
			ShortDatePattern:            c.ShortDatePattern,
			ShortestDatePattern:         c.ShortestDatePattern,
			ShortMonthDayPattern:        c.ShortMonthDayPattern,
			ShortTimePattern:            c.ShortTimePattern,
			ShortDateTimePattern:        c.ShortDateTimePattern,
			AbbreviatedDatePattern:      c.AbbreviatedDatePattern,
			AbbreviatedShortDatePattern: c.AbbreviatedShortDatePattern,
			AbbreviatedMonthDayPattern:  c.AbbreviatedMonthDayPattern,
			MinSupportedDate:            c.MinSupportedDate.Format(supportedDateMask, nil),
			MaxSupportedDate:            c.MaxSupportedDate.Format(supportedDateMask, nil),
			TwoDigitYearMax:             c.TwoDigitYearMax,
		},
		Humanize: HumanizeSection{Short: newPhraseSection(s), Full: newPhraseSection(l)},
		Range: RangeSection{
			DateTimeFromFormat:  r.DateTimeFromFormat,
			DateTimeToFormat:    r.DateTimeToFormat,
			DateTimeRangeFormat: r.DateTimeRangeFormat,
			TimeFromFormat:      r.TimeFromFormat,
			TimeToFormat:        r.TimeToFormat,
			TimeRangeFormat:     r.TimeRangeFormat,
		},
	}
}

func (s ConfigSection) apply(c *datetime.Config) error {
	setString(&c.DateCompsOrder, s.DateCompsOrder)
	setList(&c.DayNames, s.DayNames)
	setList(&c.AbbreviatedDayNames, s.AbbreviatedDayNames)
	setList(&c.MonthNames, s.MonthNames)
	setList(&c.AbbreviatedMonthNames, s.AbbreviatedMonthNames)
	setString(&c.ShortDatePattern, s.ShortDatePattern)
	setString(&c.ShortestDatePattern, s.ShortestDatePattern)
	setString(&c.ShortMonthDayPattern, s.ShortMonthDayPattern)
	setString(&c.ShortTimePattern, s.ShortTimePattern)
	setString(&c.ShortDateTimePattern, s.ShortDateTimePattern)
	setString(&c.AbbreviatedDatePattern, s.AbbreviatedDatePattern)
	setString(&c.AbbreviatedShortDatePattern, s.AbbreviatedShortDatePattern)
	setString(&c.AbbreviatedMonthDayPattern, s.AbbreviatedMonthDayPattern)
	if s.TwoDigitYearMax != 0 {
		c.TwoDigitYearMax = s.TwoDigitYearMax
	}

	if s.MinSupportedDate != "" {
		d, err := datetime.Parse(s.MinSupportedDate)
		if err != nil {
			return fmt.Errorf("min_supported_date: %w", err)
		}
		c.MinSupportedDate = *d
	}
	if s.MaxSupportedDate != "" {
		d, err := datetime.Parse(s.MaxSupportedDate)
		if err != nil {
			return fmt.Errorf("max_supported_date: %w", err)
		}
		c.MaxSupportedDate = *d
	}
	return nil
}

func (s PhraseSection) apply(h *datetime.HumanizeFormats) {
	setString(&h.DateDaysAgo, s.DateDaysAgo)
	setString(&h.DateInDays, s.DateInDays)
	setString(&h.DateInWeek, s.DateInWeek)
	setString(&h.DateTimeAndZone, s.DateTimeAndZone)
	setString(&h.DateTimeCombined, s.DateTimeCombined)
	setString(&h.DateToday, s.DateToday)
	setString(&h.DateTomorrow, s.DateTomorrow)
	setString(&h.DateWeekAgo, s.DateWeekAgo)
	setString(&h.DateYesterday, s.DateYesterday)
	setString(&h.LocalLabel, s.LocalLabel)
	setString(&h.TimeHourAgo, s.TimeHourAgo)
	setString(&h.TimeHoursAgo, s.TimeHoursAgo)
	setString(&h.TimeInHour, s.TimeInHour)
	setString(&h.TimeInHours, s.TimeInHours)
	setString(&h.TimeInMinute, s.TimeInMinute)
	setString(&h.TimeInMinutes, s.TimeInMinutes)
	setString(&h.TimeInSecond, s.TimeInSecond)
	setString(&h.TimeInSeconds, s.TimeInSeconds)
	setString(&h.TimeMinuteAgo, s.TimeMinuteAgo)
	setString(&h.TimeMinutesAgo, s.TimeMinutesAgo)
	setString(&h.TimeSecondAgo, s.TimeSecondAgo)
	setString(&h.TimeSecondsAgo, s.TimeSecondsAgo)
	setString(&h.UTCLabel, s.UTCLabel)
}

func newPhraseSection(h *datetime.HumanizeFormats) PhraseSection {
	return PhraseSection{
		DateDaysAgo:      h.DateDaysAgo,
		DateInDays:       h.DateInDays,
		DateInWeek:       h.DateInWeek,
		DateTimeAndZone:  h.DateTimeAndZone,
		DateTimeCombined: h.DateTimeCombined,
		DateToday:        h.DateToday,
		DateTomorrow:     h.DateTomorrow,
		DateWeekAgo:      h.DateWeekAgo,
		DateYesterday:    h.DateYesterday,
		LocalLabel:       h.LocalLabel,
		TimeHourAgo:      h.TimeHourAgo,
		TimeHoursAgo:     h.TimeHoursAgo,
		TimeInHour:       h.TimeInHour,
		TimeInHours:      h.TimeInHours,
		TimeInMinute:     h.TimeInMinute,
		TimeInMinutes:    h.TimeInMinutes,
		TimeInSecond:     h.TimeInSecond,
		TimeInSeconds:    h.TimeInSeconds,
		TimeMinuteAgo:    h.TimeMinuteAgo,
		TimeMinutesAgo:   h.TimeMinutesAgo,
		TimeSecondAgo:    h.TimeSecondAgo,
		TimeSecondsAgo:   h.TimeSecondsAgo,
		UTCLabel:         h.UTCLabel,
	}
}

func (s RangeSection) apply(r *datetime.RangeFormats) {
	setString(&r.DateTimeFromFormat, s.DateTimeFromFormat)
	setString(&r.DateTimeToFormat, s.DateTimeToFormat)
	setString(&r.DateTimeRangeFormat, s.DateTimeRangeFormat)
	setString(&r.TimeFromFormat, s.TimeFromFormat)
	setString(&r.TimeToFormat, s.TimeToFormat)
	setString(&r.TimeRangeFormat, s.TimeRangeFormat)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setList(dst *[]string, v []string) {
	if len(v) > 0 {
		*dst = append([]string(nil), v...)
	}
}
