package datetime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

func TestFormat(t *testing.T) {
	// Tuesday
	d := datetime.New(2024, 3, 5, 14, 7, 9, 45)

	tests := []struct {
		mask string
		want string
	}{
		{"d", "5"},
		{"dd", "05"},
		{"ddd", "Tue"},
		{"dddd", "Tuesday"},
		{"M", "3"},
		{"MM", "03"},
		{"MMM", "Mar"},
		{"MMMM", "March"},
		{"y", "24"},
		{"yy", "24"},
		{"yyy", "2024"},
		{"yyyy", "2024"},
		{"h", "2"},
		{"hh", "02"},
		{"H", "14"},
		{"HH", "14"},
		{"m", "7"},
		{"mm", "07"},
		{"s", "9"},
		{"ss", "09"},
		{"l", "045"},
		{"L", "45"},
		{"tt", "PM"},
		{"dddd, MMMM d yyyy h:mm tt", "Tuesday, March 5 2024 2:07 PM"},
		{"yyyy-MM-dd HH:mm:ss.l", "2024-03-05 14:07:09.045"},
		{"yyyy 'at' HH", "2024 at 14"},
		{`"d" d`, "d 5"},
		{"'yyyy", "'2024"},
		{"Q-W", "Q-W"},
		{"t", "t"},
		{"ddddd", "Tuesday5"},
	}
	for _, tt := range tests {
		t.Run(tt.mask, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Format(tt.mask, nil))
		})
	}
}

func TestFormatYears(t *testing.T) {
	tests := []struct {
		year int
		mask string
		want string
	}{
		{2005, "y", "5"},
		{2005, "yy", "05"},
		{7, "y", "0"},
		{7, "yy", ""},
		{7, "yyy", "007"},
		{7, "yyyy", "0007"},
		{1799, "yyy", "1799"},
	}
	for _, tt := range tests {
		d := datetime.New(tt.year, 1, 1)
		assert.Equal(t, tt.want, d.Format(tt.mask, nil), "%d %s", tt.year, tt.mask)
	}
}

func TestFormatCentiseconds(t *testing.T) {
	for ms, want := range map[int]string{5: "05", 99: "99", 123: "12", 995: "100"} {
		d := datetime.New(2024, 1, 1, 0, 0, 0, ms)
		assert.Equal(t, want, d.Format("L", nil), "ms=%d", ms)
	}
}

func TestFormatTwelveHourClock(t *testing.T) {
	assert.Equal(t, "12 AM", datetime.New(2024, 1, 1, 0).Format("h tt", nil))
	assert.Equal(t, "12 PM", datetime.New(2024, 1, 1, 12).Format("h tt", nil))
	assert.Equal(t, "11 PM", datetime.New(2024, 1, 1, 23).Format("h tt", nil))
}

func TestFormatWithCustomNames(t *testing.T) {
	cfg := datetime.DefaultLocale().Config
	cfg.DayNames = []string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}
	cfg.MonthNames = []string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"}

	d := datetime.New(2024, 3, 5)
	assert.Equal(t, "Dienstag, 5. März 2024", d.Format("dddd, d. MMMM yyyy", &cfg))

	// repeated masks come from the cache and must render identically
	assert.Equal(t, d.Format("dddd, d. MMMM yyyy", &cfg), d.Format("dddd, d. MMMM yyyy", &cfg))
}

func TestIs24HoursPattern(t *testing.T) {
	assert.True(t, datetime.Is24HoursPattern("HH:mm"))
	assert.True(t, datetime.Is24HoursPattern("H:mm"))
	assert.False(t, datetime.Is24HoursPattern("h:mm tt"))
	assert.True(t, datetime.Is24HoursPattern("yyyy-MM-dd"))
}
