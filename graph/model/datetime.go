package model

import (
	"fmt"
	"time"
)

// DateTime is the timestamp scalar used by the API. It is always exchanged
// as an RFC3339 string; anything else is a parse error, never a silent
// default.
type DateTime struct {
	t time.Time
}

// NewDateTime wraps a time.Time as a DateTime.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t}
}

// ParseDateTime parses an RFC3339 string into a DateTime.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid DateTime format: %q is not RFC3339", s)
	}
	return DateTime{t: t}, nil
}

// Time returns the underlying time.Time.
func (d DateTime) Time() time.Time {
	return d.t
}

// String formats the timestamp as RFC3339.
func (d DateTime) String() string {
	return d.t.Format(time.RFC3339)
}

// MarshalJSON encodes the timestamp as an RFC3339 JSON string.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes an RFC3339 JSON string, rejecting anything else.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid DateTime format: expected a JSON string, got %s", data)
	}
	parsed, err := ParseDateTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
