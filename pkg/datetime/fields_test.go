package datetime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

func TestAccessors(t *testing.T) {
	d := datetime.New(2024, 3, 15, 14, 30, 45, 123)

	assert.Equal(t, 2024, d.Years())
	assert.Equal(t, 3, d.Months())
	assert.Equal(t, 15, d.Days())
	assert.Equal(t, 5, d.DayOfWeek())
	assert.Equal(t, 14, d.Hours())
	assert.Equal(t, 30, d.Minutes())
	assert.Equal(t, 45, d.Seconds())
	assert.Equal(t, 123, d.Milliseconds())
	assert.Equal(t, 2024*12+3, d.TotalMonths())
}

func TestSetters(t *testing.T) {
	t.Run("chain in place", func(t *testing.T) {
		d := datetime.New(2024, 1, 1)
		got := d.SetYears(2020).SetMonths(2).SetDays(29).SetHours(23).SetMinutes(59).SetSeconds(58).SetMilliseconds(7)

		assert.Same(t, d, got)
		assert.Equal(t, utcMillis(2020, 2, 29, 23, 59, 58, 7), d.Ticks())
	})

	t.Run("day overflow rolls into next month", func(t *testing.T) {
		d := datetime.New(2024, 1, 1).SetDays(32)
		assert.Equal(t, 2, d.Months())
		assert.Equal(t, 1, d.Days())
	})

	t.Run("ticks and kind", func(t *testing.T) {
		d := datetime.New(2024, 1, 1).SetTicks(1000).SetKind(datetime.KindUTC)
		assert.Equal(t, int64(1000), d.Ticks())
		assert.Equal(t, datetime.KindUTC, d.Kind())
	})
}

func TestIncAndAdd(t *testing.T) {
	t.Run("month rollover across year end", func(t *testing.T) {
		d := datetime.New(2023, 12, 10).IncMonths(1)
		assert.Equal(t, 2024, d.Years())
		assert.Equal(t, 1, d.Months())
	})

	t.Run("month end overflows into following month", func(t *testing.T) {
		d := datetime.New(2024, 1, 31).IncMonths(1)
		assert.Equal(t, 3, d.Months())
		assert.Equal(t, 2, d.Days())
	})

	t.Run("negative values", func(t *testing.T) {
		d := datetime.New(2024, 3, 1).IncDays(-1)
		assert.Equal(t, 2, d.Months())
		assert.Equal(t, 29, d.Days())

		d = datetime.New(2024, 1, 1).IncMilliseconds(-1)
		assert.Equal(t, utcMillis(2023, 12, 31, 23, 59, 59, 999), d.Ticks())
	})

	t.Run("every unit", func(t *testing.T) {
		base := datetime.New(2024, 3, 15, 10, 20, 30, 400)
		tests := []struct {
			name string
			got  *datetime.DateTime
			want int64
		}{
			{"years", base.AddYears(1), utcMillis(2025, 3, 15, 10, 20, 30, 400)},
			{"months", base.AddMonths(-3), utcMillis(2023, 12, 15, 10, 20, 30, 400)},
			{"days", base.AddDays(20), utcMillis(2024, 4, 4, 10, 20, 30, 400)},
			{"hours", base.AddHours(14), utcMillis(2024, 3, 16, 0, 20, 30, 400)},
			{"minutes", base.AddMinutes(40), utcMillis(2024, 3, 15, 11, 0, 30, 400)},
			{"seconds", base.AddSeconds(-31), utcMillis(2024, 3, 15, 10, 19, 59, 400)},
			{"milliseconds", base.AddMilliseconds(600), utcMillis(2024, 3, 15, 10, 20, 31, 0)},
			{"ticks", base.AddTicks(1), utcMillis(2024, 3, 15, 10, 20, 30, 401)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, tt.got.Ticks())
				assert.Equal(t, datetime.KindLocal, tt.got.Kind())
			})
		}
		assert.Equal(t, utcMillis(2024, 3, 15, 10, 20, 30, 400), base.Ticks(), "Add must not mutate the receiver")
	})

	t.Run("inc mutates receiver", func(t *testing.T) {
		d := datetime.New(2024, 3, 15)
		got := d.IncDays(1)
		assert.Same(t, d, got)
		assert.Equal(t, 16, d.Days())
	})
}

func TestDateAndTimeParts(t *testing.T) {
	d := datetime.New(2024, 3, 15, 14, 30, 45, 123)

	date := d.DatePart()
	assert.Equal(t, utcMillis(2024, 3, 15, 0, 0, 0, 0), date.Ticks())
	assert.Equal(t, datetime.KindUnspecified, date.Kind())

	tp := d.TimePart()
	assert.Equal(t, int64(14*3600000+30*60000+45000+123), tp.Ticks())
	assert.Equal(t, datetime.KindUnspecified, tp.Kind())

	assert.Equal(t, utcMillis(2024, 3, 15, 14, 30, 45, 123), d.Ticks(), "parts must not mutate the receiver")
}

func TestSetDateAndTime(t *testing.T) {
	d := datetime.New(2024, 3, 15, 14, 30, 45, 123)

	d.SetDate(2020, 2, 29)
	assert.Equal(t, utcMillis(2020, 2, 29, 14, 30, 45, 123), d.Ticks())

	d.SetTime(8, 5, 0, 0)
	assert.Equal(t, utcMillis(2020, 2, 29, 8, 5, 0, 0), d.Ticks())

	other := datetime.New(1999, 12, 31, 23, 59, 58, 1)
	d.SetDateFrom(other)
	assert.Equal(t, utcMillis(1999, 12, 31, 8, 5, 0, 0), d.Ticks())

	d.SetTimeFrom(other)
	assert.Equal(t, other.Ticks(), d.Ticks())
}

func TestKindConversion(t *testing.T) {
	offset := datetime.TimezoneOffsetTicks()

	t.Run("local round trip", func(t *testing.T) {
		local := datetime.New(2024, 6, 1, 12)
		utc := local.ToUniversalTime()

		assert.Equal(t, datetime.KindUTC, utc.Kind())
		assert.Equal(t, local.Ticks()-offset, utc.Ticks())

		back := utc.ToLocalTime()
		assert.True(t, local.Equal(back))
	})

	t.Run("already in target kind is a fixed point", func(t *testing.T) {
		local := datetime.New(2024, 6, 1, 12)
		assert.True(t, local.Equal(local.ToLocalTime().ToLocalTime()))

		utc := datetime.MustParse("2024-06-01T12:00:00Z")
		assert.True(t, utc.Equal(utc.ToUniversalTime()))
	})

	t.Run("unspecified shifts", func(t *testing.T) {
		d := datetime.FromTicks(1_000_000)
		assert.Equal(t, 1_000_000+offset, d.ToLocalTime().Ticks())
		assert.Equal(t, 1_000_000-offset, d.ToUniversalTime().Ticks())
		assert.Equal(t, datetime.KindUnspecified, d.Kind(), "conversion returns a copy")
	})

	t.Run("offset in hours", func(t *testing.T) {
		hours := datetime.TimezoneOffset()
		require.InDelta(t, float64(offset)/3600000, hours, 0.05)
	})
}
