package routes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidNumber is returned if a route number is negative or not an integer.
	ErrInvalidNumber = errors.New("illegal number")
	// ErrInvalidTime is returned if a departure time is not in 24-hour HH:MM form.
	ErrInvalidTime = errors.New("illegal time")
	// ErrInvalidDestination is returned if a route has no destination.
	ErrInvalidDestination = errors.New("empty destination")
)

// NumberError carries the offending route number.
// Text is set instead of Number when the input was not an integer at all.
type NumberError struct {
	Number int
	Text   string
}

func (e *NumberError) Error() string {
	if e.Number < 0 {
		return fmt.Sprintf("%d -> %s", e.Number, ErrInvalidNumber)
	}
	return fmt.Sprintf("%q -> %s", e.Text, ErrInvalidNumber)
}

// Unwrap allows errors.Is to match ErrInvalidNumber.
func (e *NumberError) Unwrap() error {
	return ErrInvalidNumber
}

// TimeError carries the departure time text that failed to parse.
type TimeError struct {
	Text string
}

func (e *TimeError) Error() string {
	return fmt.Sprintf("%q -> %s", e.Text, ErrInvalidTime)
}

// Unwrap allows errors.Is to match ErrInvalidTime.
func (e *TimeError) Unwrap() error {
	return ErrInvalidTime
}

// ParseNumber converts the textual form of a route number and checks it is acceptable.
func ParseNumber(text string) (int, error) {
	trimmed := strings.TrimSpace(text)

	val, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &NumberError{Text: text}
	}
	if val < 0 {
		return 0, &NumberError{Number: val}
	}

	return val, nil
}
