package itinerary

import "itinerary/internal/domain/models"

// Reconstructor chains an unordered set of tickets into a single trip.
//
// The zero value is lenient: duplicate departures overwrite each other, the
// first qualifying start wins and tickets unreachable from it are dropped.
// Strict turns each of those situations into an error. Cycles are always
// rejected.
type Reconstructor struct {
	Strict bool
}

// Reconstruct orders tickets with a lenient Reconstructor.
func Reconstruct(tickets []models.Ticket) ([]models.Ticket, error) {
	return Reconstructor{}.Reconstruct(tickets)
}

// Reconstruct returns tickets ordered so that every arrival is the next departure.
// The input slice is never modified.
func (r Reconstructor) Reconstruct(tickets []models.Ticket) ([]models.Ticket, error) {
	if len(tickets) == 0 {
		return []models.Ticket{}, nil
	}

	byDeparture := make(map[string]int, len(tickets))
	arrivals := make(map[string]struct{}, len(tickets))
	for i, t := range tickets {
		if _, dup := byDeparture[t.Departure]; dup && r.Strict {
			return nil, DuplicateDepartureError{Departure: t.Departure}
		}
		byDeparture[t.Departure] = i
		arrivals[t.Arrival] = struct{}{}
	}

	start := -1
	var starts []string
	for i, t := range tickets {
		if _, ok := arrivals[t.Departure]; ok {
			continue
		}
		if start < 0 {
			start = i
		}
		starts = append(starts, t.Departure)
	}
	if start < 0 {
		return nil, NoStartingPointError{}
	}
	if r.Strict && len(starts) > 1 {
		return nil, AmbiguousStartError{Departures: starts}
	}

	visited := make([]bool, len(tickets))
	ordered := make([]models.Ticket, 0, len(tickets))
	cur := start
	for {
		if visited[cur] {
			return nil, CycleDetectedError{Departure: tickets[cur].Departure}
		}
		visited[cur] = true
		ordered = append(ordered, tickets[cur])

		next, ok := byDeparture[tickets[cur].Arrival]
		if !ok {
			break
		}
		cur = next
	}

	if r.Strict && len(ordered) != len(tickets) {
		return nil, UnreachableLegsError{Count: len(tickets) - len(ordered)}
	}
	return ordered, nil
}
