package datetime

import "fmt"

// Kind tells how the calendar fields of a DateTime are meant to be read.
type Kind int

const (
	// KindUnspecified means the instant carries no zone intent.
	KindUnspecified Kind = iota
	// KindUTC means the calendar fields are UTC wall-clock values.
	KindUTC
	// KindLocal means the calendar fields are host-local wall-clock values.
	KindLocal
)

// String returns the lowercase label used in DateTime.String.
func (k Kind) String() string {
	switch k {
	case KindUTC:
		return "utc"
	case KindLocal:
		return "local"
	default:
		return "unspecified"
	}
}

// Unit is the granularity used by Floor and CompareFloor.
type Unit string

// Units from coarsest to finest. UnitNone compares full instants.
const (
	UnitYear   Unit = "year"
	UnitMonth  Unit = "month"
	UnitDay    Unit = "day"
	UnitHour   Unit = "hour"
	UnitMinute Unit = "minute"
	UnitSecond Unit = "second"
	UnitNone   Unit = "none"
)

// ParseUnit converts a textual token into a Unit.
// The empty string is treated as UnitNone.
func ParseUnit(s string) (Unit, error) {
	if s == "" {
		return UnitNone, nil
	}
	u := Unit(s)
	if !u.valid() {
		return "", fmt.Errorf("%w: unknown floor unit %q", ErrInvalidArgument, s)
	}
	return u, nil
}

func (u Unit) valid() bool {
	switch u {
	case UnitYear, UnitMonth, UnitDay, UnitHour, UnitMinute, UnitSecond, UnitNone:
		return true
	}
	return false
}

// rank orders units from coarsest (year) to finest (none).
func (u Unit) rank() int {
	switch u {
	case UnitYear:
		return 0
	case UnitMonth:
		return 1
	case UnitDay:
		return 2
	case UnitHour:
		return 3
	case UnitMinute:
		return 4
	case UnitSecond:
		return 5
	default:
		return 6
	}
}

// Mode selects what part of the values range text renders.
type Mode int

// Range text modes.
const (
	ModeDateTime Mode = iota
	ModeDate
	ModeTime
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDateTime:
		return "datetime"
	case ModeDate:
		return "date"
	case ModeTime:
		return "time"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "datetime", "date" or "time" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "datetime", "":
		return ModeDateTime, nil
	case "date":
		return ModeDate, nil
	case "time":
		return ModeTime, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, s)
}
