package datetime

import "fmt"

// Compare returns the signed millisecond difference between the receiver and other.
// When both values carry a zone kind and the kinds differ, other is converted to the
// receiver's kind first (UTC receivers convert to UTC, local ones to local).
// KindUnspecified on either side never triggers a conversion. A nil other is Now().
func (d *DateTime) Compare(other *DateTime) int64 {
	diff, _ := d.CompareFloor(other, UnitNone)
	return diff
}

// CompareFloor is Compare with both sides floored to the given unit first.
func (d *DateTime) CompareFloor(other *DateTime, floorTo Unit) (int64, error) {
	if !floorTo.valid() {
		return 0, fmt.Errorf("%w: unknown floor unit %q", ErrInvalidArgument, floorTo)
	}
	if other == nil {
		other = Now()
	}

	if d.kind != other.kind && d.kind != KindUnspecified && other.kind != KindUnspecified {
		if d.kind == KindUTC {
			other = other.ToUniversalTime()
		} else {
			other = other.ToLocalTime()
		}
	}

	left, _ := FloorTicks(d, floorTo)
	right, _ := FloorTicks(other, floorTo)
	return left - right, nil
}

// FloorTicks returns the instant of d with every field finer than floorTo reset to its
// minimum (day to 1, the rest to 0).
func FloorTicks(d *DateTime, floorTo Unit) (int64, error) {
	if !floorTo.valid() {
		return 0, fmt.Errorf("%w: unknown floor unit %q", ErrInvalidArgument, floorTo)
	}
	if floorTo == UnitNone {
		return d.ticks, nil
	}

	f := d.fields()
	r := floorTo.rank()
	if r < UnitMonth.rank() {
		f.month = 1
	}
	if r < UnitDay.rank() {
		f.day = 1
	}
	if r < UnitHour.rank() {
		f.hour = 0
	}
	if r < UnitMinute.rank() {
		f.minute = 0
	}
	if r < UnitSecond.rank() {
		f.second = 0
	}
	f.msec = 0

	return compose(f.year, f.month, f.day, f.hour, f.minute, f.second, f.msec), nil
}

// Floor truncates the receiver in place to the given unit.
func (d *DateTime) Floor(to Unit) (*DateTime, error) {
	ticks, err := FloorTicks(d, to)
	if err != nil {
		return d, err
	}
	return d.SetTicks(ticks), nil
}
