package itinerary

import (
	"errors"
	"fmt"
	"strings"
)

// NoStartingPointError means no ticket departs from a place that is never an arrival.
type NoStartingPointError struct{}

func (NoStartingPointError) Error() string {
	return "Could not determine the starting point."
}

// CycleDetectedError means the chain walked back onto a ticket it had already visited.
type CycleDetectedError struct {
	Departure string
}

func (e CycleDetectedError) Error() string {
	if e.Departure == "" {
		return "itinerary contains a cycle"
	}
	return fmt.Sprintf("itinerary contains a cycle at %q", e.Departure)
}

// DuplicateDepartureError is returned in strict mode when two tickets leave from the same place.
type DuplicateDepartureError struct {
	Departure string
}

func (e DuplicateDepartureError) Error() string {
	return fmt.Sprintf("more than one ticket departs from %q", e.Departure)
}

// AmbiguousStartError is returned in strict mode when several tickets could start the trip.
type AmbiguousStartError struct {
	Departures []string
}

func (e AmbiguousStartError) Error() string {
	return fmt.Sprintf("ambiguous starting point: %s", strings.Join(e.Departures, ", "))
}

// UnreachableLegsError is returned in strict mode when the chain leaves tickets behind.
type UnreachableLegsError struct {
	Count int
}

func (e UnreachableLegsError) Error() string {
	return fmt.Sprintf("%d ticket(s) are not reachable from the starting point", e.Count)
}

// IsItineraryError reports whether err (or anything it wraps) is a reconstruction failure.
func IsItineraryError(err error) bool {
	var (
		noStart   NoStartingPointError
		cycle     CycleDetectedError
		dup       DuplicateDepartureError
		ambiguous AmbiguousStartError
		unreach   UnreachableLegsError
	)
	return errors.As(err, &noStart) ||
		errors.As(err, &cycle) ||
		errors.As(err, &dup) ||
		errors.As(err, &ambiguous) ||
		errors.As(err, &unreach)
}
