package datetime

import (
	"math"
	"time"
)

func (d *DateTime) utc() time.Time { return time.UnixMilli(d.ticks).UTC() }

// Years returns the calendar year.
func (d *DateTime) Years() int { return d.utc().Year() }

// Months returns the month, 1 through 12.
func (d *DateTime) Months() int { return int(d.utc().Month()) }

// Days returns the day of the month.
func (d *DateTime) Days() int { return d.utc().Day() }

// DayOfWeek returns 0 for Sunday through 6 for Saturday.
func (d *DateTime) DayOfWeek() int { return int(d.utc().Weekday()) }

// Hours returns the hour, 0 through 23.
func (d *DateTime) Hours() int { return d.utc().Hour() }

// Minutes returns the minute of the hour.
func (d *DateTime) Minutes() int { return d.utc().Minute() }

// Seconds returns the second of the minute.
func (d *DateTime) Seconds() int { return d.utc().Second() }

// Milliseconds returns the millisecond of the second.
func (d *DateTime) Milliseconds() int { return d.utc().Nanosecond() / int(time.Millisecond) }

// Ticks returns milliseconds since the Unix epoch.
func (d *DateTime) Ticks() int64 { return d.ticks }

// Kind returns the zone tag.
func (d *DateTime) Kind() Kind { return d.kind }

// TotalMonths returns abs(year)*12 + month.
func (d *DateTime) TotalMonths() int {
	y := d.Years()
	if y < 0 {
		y = -y
	}
	return y*12 + d.Months()
}

// set recomposes the instant after fn adjusted the field vector.
func (d *DateTime) set(fn func(f *fieldSet)) *DateTime {
	f := d.fields()
	fn(&f)
	d.ticks = compose(f.year, f.month, f.day, f.hour, f.minute, f.second, f.msec)
	return d
}

type fieldSet struct {
	year, month, day, hour, minute, second, msec int
}

func (d *DateTime) fields() fieldSet {
	t := d.utc()
	return fieldSet{
		year:   t.Year(),
		month:  int(t.Month()),
		day:    t.Day(),
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
		msec:   t.Nanosecond() / int(time.Millisecond),
	}
}

// SetYears replaces the year in place.
func (d *DateTime) SetYears(v int) *DateTime { return d.set(func(f *fieldSet) { f.year = v }) }

// SetMonths replaces the month in place; values outside 1..12 roll into the year.
func (d *DateTime) SetMonths(v int) *DateTime { return d.set(func(f *fieldSet) { f.month = v }) }

// SetDays replaces the day in place; overflow rolls into the month.
func (d *DateTime) SetDays(v int) *DateTime { return d.set(func(f *fieldSet) { f.day = v }) }

// SetHours replaces the hour in place.
func (d *DateTime) SetHours(v int) *DateTime { return d.set(func(f *fieldSet) { f.hour = v }) }

// SetMinutes replaces the minute in place.
func (d *DateTime) SetMinutes(v int) *DateTime { return d.set(func(f *fieldSet) { f.minute = v }) }

// SetSeconds replaces the second in place.
func (d *DateTime) SetSeconds(v int) *DateTime { return d.set(func(f *fieldSet) { f.second = v }) }

// SetMilliseconds replaces the millisecond in place.
func (d *DateTime) SetMilliseconds(v int) *DateTime {
	return d.set(func(f *fieldSet) { f.msec = v })
}

// SetTicks replaces the instant, keeping the kind.
func (d *DateTime) SetTicks(v int64) *DateTime { d.ticks = v; return d }

// SetKind retags the value without moving the instant.
func (d *DateTime) SetKind(k Kind) *DateTime { d.kind = k; return d }

// IncYears adds v years in place.
func (d *DateTime) IncYears(v int) *DateTime { return d.SetYears(d.Years() + v) }

// IncMonths adds v months in place; overflow rolls into the year.
func (d *DateTime) IncMonths(v int) *DateTime { return d.SetMonths(d.Months() + v) }

// IncDays adds v days in place.
func (d *DateTime) IncDays(v int) *DateTime { return d.SetDays(d.Days() + v) }

// IncHours adds v hours in place.
func (d *DateTime) IncHours(v int) *DateTime { return d.SetHours(d.Hours() + v) }

// IncMinutes adds v minutes in place.
func (d *DateTime) IncMinutes(v int) *DateTime { return d.SetMinutes(d.Minutes() + v) }

// IncSeconds adds v seconds in place.
func (d *DateTime) IncSeconds(v int) *DateTime { return d.SetSeconds(d.Seconds() + v) }

// IncMilliseconds adds v milliseconds in place.
func (d *DateTime) IncMilliseconds(v int) *DateTime { return d.SetMilliseconds(d.Milliseconds() + v) }

// IncTicks moves the instant by v milliseconds in place.
func (d *DateTime) IncTicks(v int64) *DateTime { return d.SetTicks(d.ticks + v) }

// AddYears returns a copy shifted by v years.
func (d *DateTime) AddYears(v int) *DateTime { return d.Clone().IncYears(v) }

// AddMonths returns a copy shifted by v months.
func (d *DateTime) AddMonths(v int) *DateTime { return d.Clone().IncMonths(v) }

// AddDays returns a copy shifted by v days.
func (d *DateTime) AddDays(v int) *DateTime { return d.Clone().IncDays(v) }

// AddHours returns a copy shifted by v hours.
func (d *DateTime) AddHours(v int) *DateTime { return d.Clone().IncHours(v) }

// AddMinutes returns a copy shifted by v minutes.
func (d *DateTime) AddMinutes(v int) *DateTime { return d.Clone().IncMinutes(v) }

// AddSeconds returns a copy shifted by v seconds.
func (d *DateTime) AddSeconds(v int) *DateTime { return d.Clone().IncSeconds(v) }

// AddMilliseconds returns a copy shifted by v milliseconds.
func (d *DateTime) AddMilliseconds(v int) *DateTime { return d.Clone().IncMilliseconds(v) }

// AddTicks returns a copy moved by v milliseconds.
func (d *DateTime) AddTicks(v int64) *DateTime { return d.Clone().IncTicks(v) }

// DatePart returns a copy floored to the day and tagged KindUnspecified.
func (d *DateTime) DatePart() *DateTime {
	f := d.fields()
	return &DateTime{ticks: compose(f.year, f.month, f.day, 0, 0, 0, 0), kind: KindUnspecified}
}

// TimePart returns the time-of-day fields placed on 1970-01-01, tagged KindUnspecified.
func (d *DateTime) TimePart() *DateTime {
	f := d.fields()
	return New(1970, 1, 1, f.hour, f.minute, f.second, f.msec).SetKind(KindUnspecified)
}

// SetDate injects year, month and day in that order.
func (d *DateTime) SetDate(year, month, day int) *DateTime {
	return d.SetYears(year).SetMonths(month).SetDays(day)
}

// SetDateFrom copies the date fields of src into the receiver.
func (d *DateTime) SetDateFrom(src *DateTime) *DateTime {
	return d.SetDate(src.Years(), src.Months(), src.Days())
}

// SetTime injects hour, minute, second and millisecond in that order.
func (d *DateTime) SetTime(hour, minute, sec, msec int) *DateTime {
	return d.SetHours(hour).SetMinutes(minute).SetSeconds(sec).SetMilliseconds(msec)
}

// SetTimeFrom copies the time-of-day fields of src into the receiver.
func (d *DateTime) SetTimeFrom(src *DateTime) *DateTime {
	return d.SetTime(src.Hours(), src.Minutes(), src.Seconds(), src.Milliseconds())
}

// TimezoneOffsetTicks returns the host's current UTC offset in milliseconds
// (positive east of Greenwich). It is evaluated against the wall clock at call
// time, not against any particular instant.
func TimezoneOffsetTicks() int64 {
	_, offset := time.Now().Zone()
	return int64(offset) * 1000
}

// TimezoneOffset returns the host's current UTC offset in hours, rounded to one decimal.
func TimezoneOffset() float64 {
	hours := float64(TimezoneOffsetTicks()) / float64(time.Hour/time.Millisecond)
	return math.Round(hours*10) / 10
}

// ToLocalTime returns a copy tagged KindLocal. The instant is shifted by the host
// offset unless the receiver is already local.
func (d *DateTime) ToLocalTime() *DateTime { return d.convert(KindLocal) }

// ToUniversalTime returns a copy tagged KindUTC. The instant is shifted back by the
// host offset unless the receiver is already UTC.
func (d *DateTime) ToUniversalTime() *DateTime { return d.convert(KindUTC) }

func (d *DateTime) convert(target Kind) *DateTime {
	result := d.Clone()
	if result.kind == target {
		return result
	}
	offset := TimezoneOffsetTicks()
	if target == KindUTC {
		offset = -offset
	}
	return result.IncTicks(offset).SetKind(target)
}
