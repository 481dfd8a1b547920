// Package availability decides which rooms are free on a reference date.
//
// Occupancy is checked for the reference day only; a room booked tomorrow is still
// available today. A search with no active filter yields nothing.
package availability

import "github.com/google/uuid"

type Criteria struct {
	MinCapacity      *int
	RequireProjector bool
}

// Active reports whether at least one filter was supplied.
func (c Criteria) Active() bool {
	return c.MinCapacity != nil || c.RequireProjector
}

func (c Criteria) Admits(capacity int, projectorAvailable bool) bool {
	if c.MinCapacity != nil && capacity < *c.MinCapacity {
		return false
	}
	if c.RequireProjector && !projectorAvailable {
		return false
	}
	return true
}

type Candidate struct {
	ID                 uuid.UUID
	Capacity           int
	ProjectorAvailable bool
}

// Select keeps the rooms admitted by c that are not in occupied, preserving input order.
func Select[T any](rooms []T, c Criteria, occupied map[uuid.UUID]struct{}, candidate func(T) Candidate) []T {
	result := make([]T, 0, len(rooms))
	if !c.Active() {
		return result
	}

	for _, r := range rooms {
		cand := candidate(r)
		if !c.Admits(cand.Capacity, cand.ProjectorAvailable) {
			continue
		}
		if _, busy := occupied[cand.ID]; busy {
			continue
		}
		result = append(result, r)
	}
	return result
}
