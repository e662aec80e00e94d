// Package routes keeps an in-memory, destination-ordered book of transit departures.
package routes

import (
	"sort"

	"go.uber.org/zap"
)

type entry struct {
	route Route
	seq   uint64
}

// Store is an ordered collection of routes.
// After every mutation the routes are sorted by destination; routes sharing a destination
// keep the order they were added in.
type Store struct {
	logger *zap.Logger

	entries []entry
	nextSeq uint64
}

// NewStore creates a new, empty route store.
func NewStore(logger *zap.Logger) *Store {
	return &Store{
		logger: logger,
	}
}

// Add validates the supplied fields and inserts the resulting route.
// Nothing is inserted if validation fails.
func (s *Store) Add(destination string, number int, timeText string) error {
	r, err := NewRoute(destination, number, timeText)
	if err != nil {
		return err
	}

	s.entries = append(s.entries, entry{route: r, seq: s.nextSeq})
	s.nextSeq++
	s.sort()

	s.logger.Debug("added route",
		zap.String("destination", r.Destination),
		zap.Int("number", r.Number),
		zap.Stringer("departure", r.Departure),
		zap.Int("count", len(s.entries)),
	)
	return nil
}

// Replace swaps the contents of the store for the supplied routes.
// Every route is validated first; the store is left untouched if any are rejected.
func (s *Store) Replace(routes []Route) error {
	entries := make([]entry, 0, len(routes))
	for idx, r := range routes {
		if err := r.validate(); err != nil {
			s.logger.Debug("rejected route replacement",
				zap.Int("index", idx),
				zap.Error(err),
			)
			return err
		}
		entries = append(entries, entry{route: r, seq: uint64(idx)})
	}

	s.entries = entries
	s.nextSeq = uint64(len(entries))
	s.sort()

	s.logger.Debug("replaced routes",
		zap.Int("count", len(s.entries)),
	)
	return nil
}

// Select returns, in store order, the routes departing strictly after the supplied time.
func (s *Store) Select(timeText string) ([]Route, error) {
	cutoff, err := ParseTimeOfDay(timeText)
	if err != nil {
		return nil, err
	}

	ret := []Route{}
	for _, e := range s.entries {
		if e.route.Departure.After(cutoff) {
			ret = append(ret, e.route)
		}
	}
	return ret, nil
}

// Routes returns a copy of the stored routes in store order.
func (s *Store) Routes() []Route {
	ret := make([]Route, 0, len(s.entries))
	for _, e := range s.entries {
		ret = append(ret, e.route)
	}
	return ret
}

// Len returns the number of stored routes.
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) sort() {
	sort.Slice(s.entries, func(i, j int) bool {
		if s.entries[i].route.Destination != s.entries[j].route.Destination {
			return s.entries[i].route.Destination < s.entries[j].route.Destination
		}
		return s.entries[i].seq < s.entries[j].seq
	})
}
