package memstore

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"

	"github.com/google/uuid"
)

type roomRepo struct {
	st *state
}

func (r *roomRepo) Create(_ context.Context, rm *room.Room) error {
	if _, taken := r.st.roomByName(rm.Name().String()); taken {
		return infra.WrapRepoErr("failed to create room", errUniqueRoomName, infra.KindDuplicateKey)
	}
	r.st.rooms[rm.ID()] = toRoomRow(rm)
	return nil
}

func (r *roomRepo) Update(_ context.Context, rm *room.Room) error {
	if _, ok := r.st.rooms[rm.ID()]; !ok {
		return notFound("room not found")
	}
	if holder, taken := r.st.roomByName(rm.Name().String()); taken && holder.id != rm.ID() {
		return infra.WrapRepoErr("failed to update room", errUniqueRoomName, infra.KindDuplicateKey)
	}
	r.st.rooms[rm.ID()] = toRoomRow(rm)
	return nil
}

// Delete also drops the room's reservations, like the ON DELETE CASCADE foreign key.
func (r *roomRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.rooms[id]; !ok {
		return notFound("room not found")
	}
	delete(r.st.rooms, id)
	for resID, res := range r.st.reservations {
		if res.roomID == id {
			delete(r.st.reservations, resID)
		}
	}
	return nil
}

func toRoomRow(rm *room.Room) roomRow {
	return roomRow{
		id:                 rm.ID(),
		name:               rm.Name().String(),
		capacity:           rm.Capacity().Value(),
		projectorAvailable: rm.ProjectorAvailable(),
		createdAt:          rm.CreatedAt(),
		updatedAt:          rm.UpdatedAt(),
	}
}

type reservationRepo struct {
	st *state
}

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.st.rooms[res.RoomID()]; !ok {
		return infra.WrapRepoErr("failed to create reservation", errMissingRoom, infra.KindForeignKeyViolated)
	}
	if r.st.reserved(res.RoomID(), res.Date()) {
		return infra.WrapRepoErr("failed to create reservation", errUniqueReservationSlot, infra.KindDuplicateKey)
	}
	r.st.reservations[res.ID()] = reservationRow{
		id:        res.ID(),
		roomID:    res.RoomID(),
		date:      res.Date(),
		comment:   res.Comment().Ptr(),
		createdAt: res.CreatedAt(),
	}
	return nil
}

func (r *reservationRepo) DeleteByRoomID(_ context.Context, roomID uuid.UUID) (int64, error) {
	var deleted int64
	for id, res := range r.st.reservations {
		if res.roomID == roomID {
			delete(r.st.reservations, id)
			deleted++
		}
	}
	return deleted, nil
}
