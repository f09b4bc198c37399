package datetime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

func TestShortenedRangeText(t *testing.T) {
	ref := datetime.WithRangeReference(datetime.New(2024, 6, 1))

	tests := []struct {
		name string
		from *datetime.DateTime
		to   *datetime.DateTime
		mode datetime.Mode
		want string
	}{
		{
			name: "same day shows the end as time",
			from: datetime.New(2024, 3, 4, 9, 0),
			to:   datetime.New(2024, 3, 4, 11, 30),
			mode: datetime.ModeDateTime,
			want: "from 3/4 9:00 AM to 11:30 AM",
		},
		{
			name: "whole days end exclusively",
			from: datetime.New(2024, 3, 4),
			to:   datetime.New(2024, 3, 7),
			mode: datetime.ModeDateTime,
			want: "from 3/4 to 3/6",
		},
		{
			name: "single whole day collapses",
			from: datetime.New(2024, 3, 4),
			to:   datetime.New(2024, 3, 5),
			mode: datetime.ModeDateTime,
			want: "3/4",
		},
		{
			name: "midnight start of a short range keeps its time",
			from: datetime.New(2024, 3, 4),
			to:   datetime.New(2024, 3, 4, 12),
			mode: datetime.ModeDateTime,
			want: "from 3/4 12:00 AM to 12:00 PM",
		},
		{
			name: "open end",
			from: datetime.New(2024, 3, 4, 9, 0),
			mode: datetime.ModeDateTime,
			want: "from 3/4 9:00 AM",
		},
		{
			name: "open end at midnight",
			from: datetime.New(2024, 3, 4),
			mode: datetime.ModeDateTime,
			want: "from 3/4",
		},
		{
			name: "open start at midnight",
			to:   datetime.New(2024, 3, 7),
			mode: datetime.ModeDateTime,
			want: "to 3/6",
		},
		{
			name: "time mode",
			from: datetime.New(2024, 3, 4, 9, 0),
			to:   datetime.New(2024, 3, 4, 17, 0),
			mode: datetime.ModeTime,
			want: "from 9:00 AM to 5:00 PM",
		},
		{
			name: "date mode is inclusive",
			from: datetime.New(2024, 3, 4, 9, 0),
			to:   datetime.New(2024, 3, 8, 9, 0),
			mode: datetime.ModeDate,
			want: "from 3/4 to 3/8",
		},
		{
			name: "other year inside two digit window",
			from: datetime.New(2019, 3, 4),
			mode: datetime.ModeDate,
			want: "from 3/4/19",
		},
		{
			name: "year outside two digit window",
			from: datetime.New(1920, 3, 4),
			mode: datetime.ModeDate,
			want: "from 3/4/1920",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datetime.ShortenedRangeText(tt.from, tt.to, tt.mode, nil, nil, ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("no endpoints", func(t *testing.T) {
		got, err := datetime.ShortenedRangeText(nil, nil, datetime.ModeDate, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := datetime.ShortenedRangeText(datetime.New(2024, 1, 1), nil, datetime.Mode(42), nil, nil)
		assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
	})

	t.Run("endpoints are not mutated", func(t *testing.T) {
		from := datetime.FromTicks(0)
		to := datetime.FromTicks(3600000)
		_, err := datetime.ShortenedRangeText(from, to, datetime.ModeDateTime, nil, nil, ref)
		require.NoError(t, err)
		assert.Equal(t, int64(0), from.Ticks())
		assert.Equal(t, datetime.KindUnspecified, from.Kind())
	})

	t.Run("custom formats", func(t *testing.T) {
		formats := datetime.DefaultLocale().Range
		formats.DateTimeRangeFormat = "{0} - {1}"
		got, err := datetime.ShortenedRangeText(datetime.New(2024, 3, 4), datetime.New(2024, 3, 7), datetime.ModeDate, nil, &formats, ref)
		require.NoError(t, err)
		assert.Equal(t, "3/4 - 3/7", got)
	})
}
