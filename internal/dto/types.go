package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// The console transmits numeric ids as strings ("3") or numbers (3) depending
// on whether the value came from a form field or a picker, and booleans as
// true/false, 0/1 or "1". FlexID and FlexBool accept all of those.

type FlexID uint

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	b = bytes.Trim(b, `"`)
	if len(b) == 0 {
		return nil
	}
	n, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q", string(b))
	}
	*f = FlexID(n)
	return nil
}

func (f FlexID) Uint() uint {
	return uint(f)
}

// UintPtr converts an optional id, mapping nil to nil.
func UintPtr(f *FlexID) *uint {
	if f == nil {
		return nil
	}
	v := uint(*f)
	return &v
}

type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch string(bytes.Trim(b, `"`)) {
	case "true", "1":
		*f = true
	case "false", "0", "":
		*f = false
	default:
		return fmt.Errorf("invalid boolean value %q", string(b))
	}
	return nil
}

func (f FlexBool) Bool() bool {
	return bool(f)
}
