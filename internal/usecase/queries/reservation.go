package queries

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindUpcomingByRoom(ctx context.Context, roomID uuid.UUID, from reservation.Date) ([]*ReservationView, error)
	ExistsOn(ctx context.Context, roomID uuid.UUID, date reservation.Date) (bool, error)
	RoomIDsReservedOn(ctx context.Context, date reservation.Date) ([]uuid.UUID, error)
}

type ReservationQueries interface {
	ListUpcoming(ctx context.Context, roomID uuid.UUID, asOf reservation.Date) ([]*ReservationView, error)
	IsReserved(ctx context.Context, roomID uuid.UUID, date reservation.Date) (bool, error)
}

type reservationQueriesImpl struct {
	rooms        RoomReadStore
	reservations ReservationReadStore
}

func NewReservationQueries(rooms RoomReadStore, reservations ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{rooms: rooms, reservations: reservations}
}

// ListUpcoming returns the room's reservations dated on or after asOf, earliest first.
func (q *reservationQueriesImpl) ListUpcoming(ctx context.Context, roomID uuid.UUID, asOf reservation.Date) ([]*ReservationView, error) {
	if err := q.ensureRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return q.reservations.FindUpcomingByRoom(ctx, roomID, asOf)
}

// IsReserved reports whether the room is booked on date. A missing room is NotFound.
func (q *reservationQueriesImpl) IsReserved(ctx context.Context, roomID uuid.UUID, date reservation.Date) (bool, error) {
	if err := q.ensureRoom(ctx, roomID); err != nil {
		return false, err
	}
	return q.reservations.ExistsOn(ctx, roomID, date)
}

func (q *reservationQueriesImpl) ensureRoom(ctx context.Context, roomID uuid.UUID) error {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return room.ErrNotFound
		}
		return err
	}
	return nil
}
