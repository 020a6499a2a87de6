package model

import (
	"encoding/json"
	"fmt"
)

// TimeOfDay is a wall clock time without a date, serialized as "HH:MM".
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24h clock).
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	var ret TimeOfDay
	if _, err := fmt.Sscanf(text, "%d:%d", &ret.Hour, &ret.Minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", text, err)
	}
	if ret.Hour < 0 || ret.Hour > 23 || ret.Minute < 0 || ret.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", text)
	}
	return ret, nil
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

// Before reports whether t precedes other.
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.Minutes() < other.Minutes() }

// IsZero reports whether t is the zero value (midnight).
func (t TimeOfDay) IsZero() bool { return t.Hour == 0 && t.Minute == 0 }

func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// MarshalJSON encodes the time as "HH:MM".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes "HH:MM".
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(text)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the time as "HH:MM".
func (t TimeOfDay) MarshalYAML() (interface{}, error) { return t.String(), nil }

// UnmarshalYAML decodes "HH:MM".
func (t *TimeOfDay) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var text string
	if err := unmarshal(&text); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(text)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// OverlapHours returns the overlap, in hours, between windows [aFrom, aTo) and
// [bFrom, bTo); zero when the windows are disjoint.
func OverlapHours(aFrom, aTo, bFrom, bTo TimeOfDay) float64 {
	start := aFrom.Minutes()
	if b := bFrom.Minutes(); b > start {
		start = b
	}
	end := aTo.Minutes()
	if b := bTo.Minutes(); b < end {
		end = b
	}
	if end <= start {
		return 0
	}
	return float64(end-start) / 60
}
