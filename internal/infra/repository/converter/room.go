package converter

import (
	"room-booking/internal/domain/room"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
)

func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:                 r.ID(),
		Name:               r.Name().String(),
		Capacity:           pgconv.IntToInt32(r.Capacity().Value()),
		ProjectorAvailable: r.ProjectorAvailable(),
		CreatedAt:          pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RoomToUpdateParams(r *room.Room) sqlc.UpdateRoomParams {
	return sqlc.UpdateRoomParams{
		ID:                 r.ID(),
		Name:               r.Name().String(),
		Capacity:           pgconv.IntToInt32(r.Capacity().Value()),
		ProjectorAvailable: r.ProjectorAvailable(),
		UpdatedAt:          pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
