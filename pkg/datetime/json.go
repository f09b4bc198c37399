package datetime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON encodes the instant as the wrapped "/Date(<ms>)/" string.
// The kind is not encoded; decoding yields KindUTC.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal("/Date(" + strconv.FormatInt(d.ticks, 10) + ")/")
}

// UnmarshalJSON accepts any string Parse understands or a number of milliseconds.
// A JSON null leaves the value unchanged.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrParseFailed, err)
		}
		parsed, err := Parse(s)
		if err != nil {
			return err
		}
		*d = *parsed
		return nil
	}

	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s is not a millisecond count", ErrParseFailed, data)
	}
	*d = DateTime{ticks: ms, kind: KindUnspecified}
	return nil
}
