package routes

import (
	"fmt"
	"strings"
	"time"
)

const (
	departureTimeFormat = "15:04"
)

// TimeOfDay is a wall-clock time with minute resolution, stored as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay converts a 24-hour "HH:MM" string into a TimeOfDay.
// The date component is discarded.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	t, err := time.Parse(departureTimeFormat, strings.TrimSpace(text))
	if err != nil {
		return 0, &TimeError{Text: text}
	}

	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

// NewTimeOfDay creates a TimeOfDay from an hour and minute.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component.
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// After reports whether t is strictly later in the day than o.
func (t TimeOfDay) After(o TimeOfDay) bool {
	return t > o
}

// String presents the time in zero-padded "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText marshals the value into its "HH:MM" form.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText takes an "HH:MM" representation and attempts to convert it.
func (t *TimeOfDay) UnmarshalText(text []byte) (err error) {
	*t, err = ParseTimeOfDay(string(text))
	return err
}
