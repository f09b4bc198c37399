package datetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

func utcMillis(y, mo, d, h, mi, s, ms int) int64 {
	return time.Date(y, time.Month(mo), d, h, mi, s, ms*int(time.Millisecond), time.UTC).UnixMilli()
}

func TestFromTime(t *testing.T) {
	now := time.Now()
	d := datetime.FromTime(now)

	assert.Equal(t, now.UnixMilli(), d.Ticks())
	assert.Equal(t, datetime.KindUnspecified, d.Kind())
}

func TestNow(t *testing.T) {
	before := time.Now().UnixMilli() + datetime.TimezoneOffsetTicks()
	d := datetime.Now()
	after := time.Now().UnixMilli() + datetime.TimezoneOffsetTicks()

	assert.Equal(t, datetime.KindLocal, d.Kind())
	assert.GreaterOrEqual(t, d.Ticks(), before)
	assert.LessOrEqual(t, d.Ticks(), after)

	assert.Equal(t, datetime.KindUTC, datetime.UTCNow().Kind())
}

func TestParse(t *testing.T) {
	t.Run("wrapped milliseconds", func(t *testing.T) {
		d, err := datetime.Parse("/Date(-11644473600000)/")
		require.NoError(t, err)
		assert.Equal(t, int64(-11644473600000), d.Ticks())
		assert.Equal(t, datetime.KindUTC, d.Kind())
	})

	t.Run("iso with fraction and zone marker", func(t *testing.T) {
		d, err := datetime.Parse("1799-06-06T22:30:42.329Z")
		require.NoError(t, err)
		assert.Equal(t, utcMillis(1799, 6, 6, 22, 30, 42, 329), d.Ticks())
		assert.Equal(t, datetime.KindUTC, d.Kind())
		assert.Equal(t, 1799, d.Years())
		assert.Equal(t, 22, d.Hours())
	})

	tests := []struct {
		name  string
		input string
		want  int64
		kind  datetime.Kind
	}{
		{"iso date", "2024-03-15", utcMillis(2024, 3, 15, 0, 0, 0, 0), datetime.KindUTC},
		{"iso year month", "2024-03", utcMillis(2024, 3, 1, 0, 0, 0, 0), datetime.KindUTC},
		{"iso space separated time", "2024-03-15 10:20", utcMillis(2024, 3, 15, 10, 20, 0, 0), datetime.KindUTC},
		{"iso short fraction", "2024-03-15T10:20:30.5", utcMillis(2024, 3, 15, 10, 20, 30, 500), datetime.KindUTC},
		{"iso week date", "2024-W01-1", utcMillis(2024, 1, 1, 0, 0, 0, 0), datetime.KindUTC},
		{"iso week without day", "2021W10", utcMillis(2021, 3, 8, 0, 0, 0, 0), datetime.KindUTC},
		{"iso zone hour offset", "2024-03-15T10:00Z-5", utcMillis(2024, 3, 15, 15, 0, 0, 0), datetime.KindUTC},
		{"rfc3339 with offset", "2006-01-02T15:04:05+02:00", utcMillis(2006, 1, 2, 13, 4, 5, 0), datetime.KindUnspecified},
		{"long english date", "January 2, 2006", utcMillis(2006, 1, 2, 0, 0, 0, 0), datetime.KindUnspecified},
		{"us short date", "01/02/2006", utcMillis(2006, 1, 2, 0, 0, 0, 0), datetime.KindUnspecified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := datetime.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Ticks())
			assert.Equal(t, tt.kind, d.Kind())
		})
	}

	t.Run("invalid input", func(t *testing.T) {
		for _, input := range []string{"", "not a date", "2024-13-01", "2024-02-30", "2024-03-15T25:00"} {
			d, err := datetime.Parse(input)
			assert.ErrorIs(t, err, datetime.ErrParseFailed, input)
			assert.Nil(t, d, input)
		}
	})
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { datetime.MustParse("2024-03-15") })
	assert.Panics(t, func() { datetime.MustParse("nope") })
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		d := datetime.New(2024, 3)
		assert.Equal(t, utcMillis(2024, 3, 1, 0, 0, 0, 0), d.Ticks())
		assert.Equal(t, datetime.KindLocal, d.Kind())
	})

	t.Run("all components", func(t *testing.T) {
		d := datetime.New(2024, 3, 15, 14, 30, 45, 123)
		assert.Equal(t, utcMillis(2024, 3, 15, 14, 30, 45, 123), d.Ticks())
	})

	t.Run("overflow rolls over", func(t *testing.T) {
		d := datetime.New(2023, 2, 29)
		assert.Equal(t, 3, d.Months())
		assert.Equal(t, 1, d.Days())

		d = datetime.New(2023, 13, 1)
		assert.Equal(t, 2024, d.Years())
		assert.Equal(t, 1, d.Months())
	})

	t.Run("too many components", func(t *testing.T) {
		assert.Panics(t, func() { datetime.New(2024, 1, 1, 0, 0, 0, 0, 0) })
	})

	t.Run("round trips calendar fields", func(t *testing.T) {
		for _, year := range []int{0, 1, 1600, 1900, 1970, 2000, 2024, 9999} {
			for month := 1; month <= 12; month++ {
				days := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
				for day := 1; day <= days; day++ {
					d := datetime.New(year, month, day)
					require.Equal(t, year, d.Years())
					require.Equal(t, month, d.Months())
					require.Equal(t, day, d.Days())
				}
			}
		}
	})
}

func TestFrom(t *testing.T) {
	src := datetime.New(2024, 3, 15)

	tests := []struct {
		name  string
		input any
		ticks int64
		kind  datetime.Kind
	}{
		{"pointer clone", src, src.Ticks(), datetime.KindLocal},
		{"value clone", *src, src.Ticks(), datetime.KindLocal},
		{"time", time.UnixMilli(1000), 1000, datetime.KindUnspecified},
		{"int64", int64(-5), -5, datetime.KindUnspecified},
		{"int", 42, 42, datetime.KindUnspecified},
		{"float64", float64(7), 7, datetime.KindUnspecified},
		{"string", "/Date(99)/", 99, datetime.KindUTC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := datetime.From(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.ticks, d.Ticks())
			assert.Equal(t, tt.kind, d.Kind())
		})
	}

	t.Run("nil is now", func(t *testing.T) {
		d, err := datetime.From(nil)
		require.NoError(t, err)
		assert.Equal(t, datetime.KindLocal, d.Kind())
	})

	t.Run("clone is independent", func(t *testing.T) {
		d, err := datetime.From(src)
		require.NoError(t, err)
		d.IncDays(1)
		assert.Equal(t, 15, src.Days())
	})

	t.Run("unsupported type", func(t *testing.T) {
		d, err := datetime.From(struct{}{})
		assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
		assert.Nil(t, d)
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "2024-03-05 07:08:09.010 (local)", datetime.New(2024, 3, 5, 7, 8, 9, 10).String())
	assert.Equal(t, "1970-01-01 00:00:00.000", datetime.FromTicks(0).String())
	assert.Equal(t, "1799-06-06 22:30:42.329 (utc)", datetime.MustParse("1799-06-06T22:30:42.329Z").String())
}

func TestEqualAndClone(t *testing.T) {
	a := datetime.New(2024, 3, 5)
	b := a.Clone()

	assert.True(t, a.Equal(b))
	b.SetKind(datetime.KindUTC)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), a.Time())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unspecified", datetime.KindUnspecified.String())
	assert.Equal(t, "utc", datetime.KindUTC.String())
	assert.Equal(t, "local", datetime.KindLocal.String())
}
