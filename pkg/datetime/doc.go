// Package datetime provides a date/time value type with explicit kind tracking,
// calendar arithmetic, .NET-style mask formatting, permissive parsing of user input and
// human-friendly relative rendering ("4h ago", "in 4m", "yesterday, 3:15 PM").
//
// A DateTime is a millisecond instant plus a Kind (Unspecified, UTC or Local). Calendar
// fields are always extracted from the instant as UTC fields; the kind says what those
// fields stand for. Converting between kinds is explicit and shifts the instant by the
// host's current UTC offset.
//
// # Construction
//
//	now := datetime.Now()                                // local wall clock, KindLocal
//	d := datetime.New(2024, 3, 15, 14, 30)               // components, KindLocal
//	u, err := datetime.Parse("1799-06-06T22:30:42.329Z") // ISO, KindUTC
//	w, err := datetime.Parse("/Date(-11644473600000)/")  // wrapped ms, KindUTC
//	t := datetime.FromTime(time.Now())                   // native instant, KindUnspecified
//	x, err := datetime.From(anyValue)                    // dispatch over all of the above
//
// # Arithmetic
//
// Set*, Inc* and Floor mutate the receiver and return it for chaining. Add* leave the
// receiver untouched and return a new value. Overflow rolls over like time.Date does:
//
//	d.IncMonths(1)          // in place
//	next := d.AddDays(7)    // copy
//	d.Floor(datetime.UnitDay)
//
// # Formatting and parsing
//
// Culture data lives in Config, HumanizeFormats and RangeFormats, bundled as a Locale.
// DefaultLocale returns the built-in English data; package locale loads others from
// YAML, JSON or TOML. Every function taking a *Config accepts nil for the English data.
//
//	loc := datetime.DefaultLocale()
//	d.Format("dddd, MMMM d yyyy h:mm tt", &loc.Config)
//	date, err := datetime.ParseDate("3/15/24", &loc.Config)
//	dt, err := datetime.ParseDateTime("3/15/2024 2:30 pm", &loc.Config)
//
// # Humanizing
//
//	h, err := datetime.Now().IncHours(-4).Humanize(nil, nil) // h.String() == "4h ago"
//	h, err = d.Humanize(&loc.Config, &loc.Humanize.Full, datetime.WithSingleLine(false))
//
// # Error Handling
//
// Invalid arguments (unknown floor unit or range mode, humanize with nothing to render)
// return ErrInvalidArgument. Input that cannot be parsed returns ErrParseFailed and a nil
// value. Both are sentinel errors for errors.Is.
package datetime
