package memstore

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// txReads sees the uncommitted state of its transaction. The store lock is already held.
type txReads struct {
	st *state
}

func (r *txReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	row, ok := r.st.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	return toRoomSnapshot(row), nil
}

func (r *txReads) RoomByName(_ context.Context, name string) (*shared.RoomSnapshot, error) {
	row, ok := r.st.roomByName(name)
	if !ok {
		return nil, notFound("room not found")
	}
	return toRoomSnapshot(row), nil
}

func (r *txReads) IsReserved(_ context.Context, roomID uuid.UUID, date reservation.Date) (bool, error) {
	return r.st.reserved(roomID, date), nil
}

func toRoomSnapshot(row roomRow) *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:                 row.id,
		Name:               row.name,
		Capacity:           row.capacity,
		ProjectorAvailable: row.projectorAvailable,
		CreatedAt:          row.createdAt,
		UpdatedAt:          row.updatedAt,
	}
}

type RoomReadStore struct {
	store *Store
}

func (r *RoomReadStore) FindAll(_ context.Context) ([]*queries.RoomView, error) {
	rows := r.store.snapshot().sortedRooms()
	views := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		views[i] = toRoomView(row)
	}
	return views, nil
}

func (r *RoomReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, ok := r.store.snapshot().rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	return toRoomView(row), nil
}

func toRoomView(row roomRow) *queries.RoomView {
	return &queries.RoomView{
		ID:                 row.id,
		Name:               row.name,
		Capacity:           row.capacity,
		ProjectorAvailable: row.projectorAvailable,
		CreatedAt:          row.createdAt,
		UpdatedAt:          row.updatedAt,
	}
}

type ReservationReadStore struct {
	store *Store
}

func (r *ReservationReadStore) FindUpcomingByRoom(_ context.Context, roomID uuid.UUID, from reservation.Date) ([]*queries.ReservationView, error) {
	rows := r.store.snapshot().upcoming(roomID, from)
	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = &queries.ReservationView{
			ID:        row.id,
			RoomID:    row.roomID,
			Date:      row.date.Time(),
			Comment:   row.comment,
			CreatedAt: row.createdAt,
		}
	}
	return views, nil
}

func (r *ReservationReadStore) ExistsOn(_ context.Context, roomID uuid.UUID, date reservation.Date) (bool, error) {
	return r.store.snapshot().reserved(roomID, date), nil
}

func (r *ReservationReadStore) RoomIDsReservedOn(_ context.Context, date reservation.Date) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, res := range r.store.snapshot().reservations {
		if res.date.Equal(date) {
			ids = append(ids, res.roomID)
		}
	}
	return ids, nil
}
