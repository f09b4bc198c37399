package datetime

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrymomot/datekit/pkg/cache"
)

type tokenKind uint8

const (
	tokenLiteral tokenKind = iota
	tokenField
)

// maskToken is either literal text or a field specifier such as "yyyy" or "tt".
type maskToken struct {
	kind tokenKind
	text string
}

// maskCache memoizes tokenized masks; token slices are never mutated after creation.
var maskCache = cache.NewLRU[string, []maskToken](256)

// tokenizeMask splits a format mask into literal and field tokens.
//
// Recognized fields: d..dddd, M..MMMM, y..yyyy, H, HH, h, hh, m, mm, s, ss, tt, l, L.
// Text inside single or double quotes is emitted literally without the quotes.
// Every other character is a literal.
func tokenizeMask(mask string) []maskToken {
	var (
		tokens  []maskToken
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, maskToken{kind: tokenLiteral, text: literal.String()})
			literal.Reset()
		}
	}
	field := func(s string) {
		flush()
		tokens = append(tokens, maskToken{kind: tokenField, text: s})
	}

	for i := 0; i < len(mask); {
		c := mask[i]
		switch c {
		case 'd', 'M', 'y':
			n := runLength(mask, i, 4)
			field(mask[i : i+n])
			i += n
		case 'H', 'h', 'm', 's':
			n := runLength(mask, i, 2)
			field(mask[i : i+n])
			i += n
		case 'l', 'L':
			field(mask[i : i+1])
			i++
		case 't':
			if i+1 < len(mask) && mask[i+1] == 't' {
				field("tt")
				i += 2
				continue
			}
			literal.WriteByte(c)
			i++
		case '"', '\'':
			end := strings.IndexByte(mask[i+1:], c)
			if end < 0 {
				literal.WriteByte(c)
				i++
				continue
			}
			literal.WriteString(mask[i+1 : i+1+end])
			i += end + 2
		default:
			literal.WriteByte(c)
			i++
		}
	}
	flush()
	return tokens
}

func runLength(s string, i, limit int) int {
	n := 1
	for n < limit && i+n < len(s) && s[i+n] == s[i] {
		n++
	}
	return n
}

// Format renders the value using a .NET-style mask such as "dddd, MMMM d yyyy h:mm tt".
// A nil cfg uses the built-in English culture data.
func (d *DateTime) Format(mask string, cfg *Config) string {
	cfg = configOrDefault(cfg)
	tokens := maskCache.GetOrCompute(mask, func() []maskToken { return tokenizeMask(mask) })

	f := d.fields()
	dow := d.DayOfWeek()

	var b strings.Builder
	for _, tok := range tokens {
		if tok.kind == tokenLiteral {
			b.WriteString(tok.text)
			continue
		}
		b.WriteString(renderField(tok.text, f, dow, cfg))
	}
	return b.String()
}

func renderField(spec string, f fieldSet, dow int, cfg *Config) string {
	hour12 := f.hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	switch spec {
	case "d":
		return strconv.Itoa(f.day)
	case "dd":
		return pad(f.day, 2)
	case "ddd":
		return nameAt(cfg.AbbreviatedDayNames, dow)
	case "dddd":
		return nameAt(cfg.DayNames, dow)
	case "M":
		return strconv.Itoa(f.month)
	case "MM":
		return pad(f.month, 2)
	case "MMM":
		return nameAt(cfg.AbbreviatedMonthNames, f.month-1)
	case "MMMM":
		return nameAt(cfg.MonthNames, f.month-1)
	case "y":
		n, _ := strconv.Atoi(yearTail(f.year))
		return strconv.Itoa(n)
	case "yy":
		return yearTail(f.year)
	case "yyy":
		return pad(f.year, 3)
	case "yyyy":
		return pad(f.year, 4)
	case "h":
		return strconv.Itoa(hour12)
	case "hh":
		return pad(hour12, 2)
	case "H":
		return strconv.Itoa(f.hour)
	case "HH":
		return pad(f.hour, 2)
	case "m":
		return strconv.Itoa(f.minute)
	case "mm":
		return pad(f.minute, 2)
	case "s":
		return strconv.Itoa(f.second)
	case "ss":
		return pad(f.second, 2)
	case "l":
		return pad(f.msec, 3)
	case "L":
		if f.msec > 99 {
			return pad(int(math.Round(float64(f.msec)/10)), 2)
		}
		return pad(f.msec, 2)
	case "tt":
		if f.hour < 12 {
			return "AM"
		}
		return "PM"
	}
	return spec
}

// yearTail drops the first two digits of the decimal year.
func yearTail(year int) string {
	s := strconv.Itoa(year)
	if len(s) <= 2 {
		return ""
	}
	return s[2:]
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func nameAt(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

var hourSpecRe = regexp.MustCompile(`(?i)h+`)

// Is24HoursPattern reports whether the first hour specifier in pattern is upper-case.
// Patterns without an hour specifier count as 24-hour.
func Is24HoursPattern(pattern string) bool {
	spec := hourSpecRe.FindString(pattern)
	if spec == "" {
		return true
	}
	r := rune(spec[0])
	return unicode.IsLetter(r) && unicode.IsUpper(r)
}
