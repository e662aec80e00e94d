package routes

import "unicode/utf8"

// Route is a single scheduled departure towards a destination.
type Route struct {
	Destination string
	Number      int
	Departure   TimeOfDay
}

// NewRoute validates the supplied fields and creates a route from them.
func NewRoute(destination string, number int, timeText string) (Route, error) {
	if number < 0 {
		return Route{}, &NumberError{Number: number}
	}

	departure, err := ParseTimeOfDay(timeText)
	if err != nil {
		return Route{}, err
	}

	r := Route{
		Destination: destination,
		Number:      number,
		Departure:   departure,
	}
	if err := r.validate(); err != nil {
		return Route{}, err
	}
	return r, nil
}

func (r Route) validate() error {
	if r.Number < 0 {
		return &NumberError{Number: r.Number}
	}
	if !validDestination(r.Destination) {
		return ErrInvalidDestination
	}
	if r.Departure < 0 || r.Departure >= NewTimeOfDay(24, 0) {
		return &TimeError{Text: r.Departure.String()}
	}
	return nil
}

// validDestination reports whether s is non-empty UTF-8 made only of characters
// an XML document can carry.
func validDestination(s string) bool {
	if len(s) < 1 || !utf8.ValidString(s) {
		return false
	}

	for _, r := range s {
		switch {
		case r == '\t', r == '\n', r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= utf8.MaxRune:
		default:
			return false
		}
	}
	return true
}
