package forms

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Number is a raw amount. It decodes from a JSON number or a JSON string, so
// API clients can send amounts in the shape responses use. It also works as a
// flag.Value.
type Number string

// UnmarshalJSON accepts 12.5, "12.5" and null.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Number(s)
	default:
		var num json.Number
		if err := json.Unmarshal(b, &num); err != nil {
			return err
		}
		*n = Number(num)
	}
	return nil
}

func (n *Number) String() string { return string(*n) }

// Set implements flag.Value.
func (n *Number) Set(s string) error {
	*n = Number(s)
	return nil
}

// Text is raw free text such as "food, lunch". It decodes from a JSON string
// or an array of strings; array entries are joined with commas. It also works
// as a flag.Value.
type Text string

// UnmarshalJSON accepts "food, lunch", ["food","lunch"] and null.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*t = Text(strings.Join(list, ","))
		return nil
	}
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = ""
	if s != nil {
		*t = Text(*s)
	}
	return nil
}

func (t *Text) String() string { return string(*t) }

// Set implements flag.Value.
func (t *Text) Set(s string) error {
	*t = Text(s)
	return nil
}
