package queries

import (
	"context"

	"room-booking/internal/domain/availability"
	"room-booking/internal/domain/reservation"
)

type AvailabilityQueries interface {
	SearchAvailable(ctx context.Context, asOf reservation.Date, criteria availability.Criteria) ([]*RoomView, error)
}

type availabilityQueriesImpl struct {
	rooms        RoomReadStore
	reservations ReservationReadStore
}

func NewAvailabilityQueries(rooms RoomReadStore, reservations ReservationReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{rooms: rooms, reservations: reservations}
}

// SearchAvailable lists rooms matching criteria that have no reservation on asOf.
// A search without any filter returns no rooms.
func (q *availabilityQueriesImpl) SearchAvailable(ctx context.Context, asOf reservation.Date, criteria availability.Criteria) ([]*RoomView, error) {
	if !criteria.Active() {
		return []*RoomView{}, nil
	}

	rooms, err := q.rooms.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	reserved, err := q.reservations.RoomIDsReservedOn(ctx, asOf)
	if err != nil {
		return nil, err
	}

	return availability.Select(rooms, criteria, idSet(reserved), func(r *RoomView) availability.Candidate {
		return availability.Candidate{ID: r.ID, Capacity: r.Capacity, ProjectorAvailable: r.ProjectorAvailable}
	}), nil
}
