package datetime

import "errors"

var (
	// ErrInvalidArgument is returned when a caller passes a value outside the accepted set:
	// an unknown floor unit, an unknown range mode, humanize options disabling both parts,
	// or an unsupported input type for From.
	ErrInvalidArgument = errors.New("datetime: invalid argument")

	// ErrParseFailed is returned by Parse, ParseDate, ParseTime and ParseDateTime when the
	// input cannot be turned into a valid date/time. The returned value is always nil.
	ErrParseFailed = errors.New("datetime: unable to parse value")
)
