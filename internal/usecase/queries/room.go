package queries

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	FindAll(ctx context.Context) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomListItem, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomDetailView, error)
}

type roomQueriesImpl struct {
	rooms        RoomReadStore
	reservations ReservationReadStore
	clock        clock.Clock
}

func NewRoomQueries(rooms RoomReadStore, reservations ReservationReadStore, clk clock.Clock) RoomQueries {
	return &roomQueriesImpl{rooms: rooms, reservations: reservations, clock: clk}
}

// ListRooms returns every room in registry order, flagging those booked today.
func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]*RoomListItem, error) {
	rooms, err := q.rooms.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	reserved, err := q.reservations.RoomIDsReservedOn(ctx, reservation.DateOf(q.clock.Now()))
	if err != nil {
		return nil, err
	}
	today := idSet(reserved)

	items := make([]*RoomListItem, len(rooms))
	for i, r := range rooms {
		_, booked := today[r.ID]
		items[i] = &RoomListItem{RoomView: *r, ReservedToday: booked}
	}
	return items, nil
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id uuid.UUID) (*RoomDetailView, error) {
	rv, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, room.ErrNotFound
		}
		return nil, err
	}
	upcoming, err := q.reservations.FindUpcomingByRoom(ctx, id, reservation.DateOf(q.clock.Now()))
	if err != nil {
		return nil, err
	}
	return &RoomDetailView{RoomView: *rv, UpcomingReservations: upcoming}, nil
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
