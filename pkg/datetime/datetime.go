package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateTime is an epoch-millisecond instant tagged with a Kind.
//
// Calendar fields are always read and written through UTC field extraction of the
// stored instant; the Kind records what those fields are meant to represent.
// Set*, Inc* and Floor mutate the receiver and return it for chaining, Add* return a
// new value. A DateTime must not be mutated concurrently.
type DateTime struct {
	ticks int64
	kind  Kind
}

var (
	msDateRe  = regexp.MustCompile(`/Date\((-?\d+)\)/`)
	isoDateRe = regexp.MustCompile(`^(\d{4})(?:-?W(\d+)(?:-?(\d+)D?)?|(?:-(\d+))?-(\d+))(?:[T ](\d+):(\d+)(?::(\d+)(?:\.(\d+))?)?)?(?:Z(-?\d*))?$`)
)

// genericLayouts is tried in order for strings that are neither /Date(n)/ nor extended ISO.
var genericLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"Mon Jan 2 2006 15:04:05",
	"Mon Jan 02 2006",
	"2 Jan 2006 15:04:05",
	"2 Jan 2006",
	"2 January 2006",
}

// Now returns the current host-local wall-clock time tagged KindLocal.
// The stored instant is shifted by TimezoneOffsetTicks so that UTC field
// extraction yields local wall-clock fields.
func Now() *DateTime {
	return &DateTime{
		ticks: time.Now().UnixMilli() + TimezoneOffsetTicks(),
		kind:  KindLocal,
	}
}

// UTCNow returns the current time converted to KindUTC.
func UTCNow() *DateTime {
	return Now().ToUniversalTime()
}

// FromTime wraps a time.Time instant. The result is KindUnspecified.
func FromTime(t time.Time) *DateTime {
	return &DateTime{ticks: t.UnixMilli(), kind: KindUnspecified}
}

// FromTicks wraps milliseconds since the Unix epoch. The result is KindUnspecified.
func FromTicks(ms int64) *DateTime {
	return &DateTime{ticks: ms, kind: KindUnspecified}
}

// New composes a DateTime from calendar components tagged KindLocal.
//
// The optional trailing values are, in order: day, hour, minute, second and
// millisecond. Day defaults to 1 and the time fields default to 0. Components are
// passed straight to the UTC composition without any offset shift; overflowing
// values roll over (month 13 is January of the next year). Passing more than five
// trailing values panics.
func New(year, month int, rest ...int) *DateTime {
	if len(rest) > 5 {
		panic(fmt.Sprintf("datetime.New: expected at most 5 trailing components, got %d", len(rest)))
	}
	parts := [5]int{1, 0, 0, 0, 0}
	copy(parts[:], rest)
	return &DateTime{
		ticks: compose(year, month, parts[0], parts[1], parts[2], parts[3], parts[4]),
		kind:  KindLocal,
	}
}

// Parse converts a string into a DateTime.
//
//   - "/Date(<ms>)/" yields the wrapped instant tagged KindUTC.
//   - Extended ISO-8601 (year, optional week or month/day, optional time, optional
//     trailing Z marker) is read as UTC fields and tagged KindUTC.
//   - Anything else is tried against a list of common layouts and tagged KindUnspecified.
//
// Unparseable input returns ErrParseFailed.
func Parse(s string) (*DateTime, error) {
	if m := msDateRe.FindStringSubmatch(s); m != nil {
		ticks, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrParseFailed, s, err)
		}
		return &DateTime{ticks: ticks, kind: KindUTC}, nil
	}

	if idx := isoDateRe.FindStringSubmatchIndex(s); idx != nil {
		ticks, err := parseISO(s, idx)
		if err != nil {
			return nil, err
		}
		return &DateTime{ticks: ticks, kind: KindUTC}, nil
	}

	trimmed := strings.TrimSpace(s)
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return &DateTime{ticks: t.UnixMilli(), kind: KindUnspecified}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrParseFailed, s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *DateTime {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// From resolves any supported input into a new DateTime:
// nil yields Now, a DateTime is cloned, a time.Time or an integer (milliseconds)
// is wrapped as KindUnspecified, and a string goes through Parse.
// Other types return ErrInvalidArgument.
func From(v any) (*DateTime, error) {
	switch x := v.(type) {
	case nil:
		return Now(), nil
	case *DateTime:
		if x == nil {
			return Now(), nil
		}
		return x.Clone(), nil
	case DateTime:
		return &x, nil
	case time.Time:
		return FromTime(x), nil
	case *time.Time:
		if x == nil {
			return Now(), nil
		}
		return FromTime(*x), nil
	case int64:
		return FromTicks(x), nil
	case int:
		return FromTicks(int64(x)), nil
	case int32:
		return FromTicks(int64(x)), nil
	case uint32:
		return FromTicks(int64(x)), nil
	case float64:
		return FromTicks(int64(x)), nil
	case string:
		return Parse(x)
	default:
		return nil, fmt.Errorf("%w: cannot build DateTime from %T", ErrInvalidArgument, v)
	}
}

// Clone returns an independent copy carrying the same instant and kind.
func (d *DateTime) Clone() *DateTime {
	c := *d
	return &c
}

// Time returns the instant as a UTC time.Time.
func (d *DateTime) Time() time.Time {
	return time.UnixMilli(d.ticks).UTC()
}

// Equal reports whether both values hold the same instant and kind.
func (d *DateTime) Equal(other *DateTime) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.ticks == other.ticks && d.kind == other.kind
}

// String renders "yyyy-MM-dd HH:mm:ss.l" followed by " (local)" or " (utc)"
// for tagged values.
func (d *DateTime) String() string {
	s := d.Format("yyyy-MM-dd HH:mm:ss.l", nil)
	switch d.kind {
	case KindLocal:
		s += " (local)"
	case KindUTC:
		s += " (utc)"
	}
	return s
}

func compose(year, month, day, hour, minute, sec, msec int) int64 {
	return time.Date(year, time.Month(month), day, hour, minute, sec, msec*int(time.Millisecond), time.UTC).UnixMilli()
}

func parseISO(s string, idx []int) (int64, error) {
	group := func(n int) (string, bool) {
		if idx[2*n] < 0 {
			return "", false
		}
		return s[idx[2*n]:idx[2*n+1]], true
	}
	num := func(n, def int) int {
		v, ok := group(n)
		if !ok {
			return def
		}
		i, _ := strconv.Atoi(v)
		return i
	}
	fail := func(reason string) (int64, error) {
		return 0, fmt.Errorf("%w: %q: %s", ErrParseFailed, s, reason)
	}

	year := num(1, 0)
	var month, day int

	if _, isWeek := group(2); isWeek {
		week, weekday := num(2, 1), num(3, 1)
		if week < 1 || week > 53 || weekday < 1 || weekday > 7 {
			return fail("week date out of range")
		}
		jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
		monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
		t := monday.AddDate(0, 0, (week-1)*7+weekday-1)
		month, day = int(t.Month()), t.Day()
		year = t.Year()
	} else if _, hasDay := group(4); hasDay {
		month, day = num(4, 1), num(5, 1)
	} else {
		month, day = num(5, 1), 1
	}

	hour, minute, sec := num(6, 0), num(7, 0), num(8, 0)
	msec := 0
	if frac, ok := group(9); ok {
		frac = (frac + "00")[:3]
		msec, _ = strconv.Atoi(frac)
	}

	if month < 1 || month > 12 || day < 1 || day > daysIn(year, month) {
		return fail("date out of range")
	}
	if hour > 23 || minute > 59 || sec > 59 {
		return fail("time out of range")
	}

	ticks := compose(year, month, day, hour, minute, sec, msec)

	// Z may carry a signed hour offset, e.g. "Z-5".
	if offset, ok := group(10); ok && offset != "" && offset != "-" {
		hours, err := strconv.Atoi(offset)
		if err != nil {
			return fail("bad zone offset")
		}
		ticks -= int64(hours) * int64(time.Hour/time.Millisecond)
	}

	return ticks, nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
