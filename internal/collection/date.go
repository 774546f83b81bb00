package collection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// LegacyTimestamp is the structured timestamp older exports used for
// date-received values.
type LegacyTimestamp struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

// DateValue is a date-received value. It holds either a plain ISO date
// string or a LegacyTimestamp. The zero value means "not received".
type DateValue struct {
	raw    string
	legacy *LegacyTimestamp
}

// Date wraps an ISO YYYY-MM-DD string.
func Date(iso string) DateValue {
	return DateValue{raw: iso}
}

// LegacyDate wraps a structured timestamp.
func LegacyDate(seconds, nanoseconds int64) DateValue {
	return DateValue{legacy: &LegacyTimestamp{Seconds: seconds, Nanoseconds: nanoseconds}}
}

// IsZero reports whether no value was recorded.
func (d DateValue) IsZero() bool {
	return d.legacy == nil && strings.TrimSpace(d.raw) == ""
}

// IsLegacy reports whether the value came from the structured form.
func (d DateValue) IsLegacy() bool {
	return d.legacy != nil
}

// ISO normalises the value to a YYYY-MM-DD string. Legacy timestamps convert
// to their UTC calendar date. Missing or unparseable values yield "".
func (d DateValue) ISO() string {
	if d.legacy != nil {
		return time.Unix(d.legacy.Seconds, d.legacy.Nanoseconds).UTC().Format(isoDate)
	}
	s := strings.TrimSpace(d.raw)
	if len(s) < len(isoDate) {
		return ""
	}
	s = s[:len(isoDate)]
	if _, err := time.Parse(isoDate, s); err != nil {
		return ""
	}
	return s
}

// String implements fmt.Stringer.
func (d DateValue) String() string {
	return d.ISO()
}

// MarshalJSON writes the legacy form back as an object so a round trip
// through storage keeps the original shape.
func (d DateValue) MarshalJSON() ([]byte, error) {
	if d.legacy != nil {
		return json.Marshal(d.legacy)
	}
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.raw)
}

// UnmarshalJSON accepts null, a string, or a {seconds, nanoseconds} object.
// Older exports prefixed the keys with an underscore; both spellings work.
func (d *DateValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*d = DateValue{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("parsing date: %w", err)
		}
		*d = DateValue{raw: s}
		return nil
	case data[0] == '{':
		var obj struct {
			Seconds      *int64 `json:"seconds"`
			Nanoseconds  int64  `json:"nanoseconds"`
			USeconds     *int64 `json:"_seconds"`
			UNanoseconds int64  `json:"_nanoseconds"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("parsing legacy timestamp: %w", err)
		}
		switch {
		case obj.Seconds != nil:
			*d = LegacyDate(*obj.Seconds, obj.Nanoseconds)
		case obj.USeconds != nil:
			*d = LegacyDate(*obj.USeconds, obj.UNanoseconds)
		default:
			*d = DateValue{}
		}
		return nil
	default:
		// Unrecognised shapes are kept as "no date" rather than failing the record.
		*d = DateValue{}
		return nil
	}
}
