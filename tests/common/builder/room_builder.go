//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/room"
	reqdto "room-booking/internal/handler/dto/request"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	ID                 uuid.UUID
	Name               string
	Capacity           int
	ProjectorAvailable bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	return &RoomBuilder{
		ID:                 uuid.New(),
		Name:               "Lab A",
		Capacity:           20,
		ProjectorAvailable: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithName(name string) *RoomBuilder {
	b.Name = name
	return b
}

func (b *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	b.Capacity = capacity
	return b
}

func (b *RoomBuilder) WithProjector(available bool) *RoomBuilder {
	b.ProjectorAvailable = available
	return b
}

// Build methods
func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.Name, b.Capacity, b.ProjectorAvailable, b.CreatedAt)
}

// BuildReconstructed keeps ID and timestamps, as loaded from storage.
func (b *RoomBuilder) BuildReconstructed() *room.Room {
	return room.ReconstructRoom(b.ID, b.Name, b.Capacity, b.ProjectorAvailable, b.CreatedAt, b.UpdatedAt)
}

func (b *RoomBuilder) BuildInfra() sqlc.Rooms {
	return sqlc.Rooms{
		ID:                 b.ID,
		Name:               b.Name,
		Capacity:           int32(b.Capacity),
		ProjectorAvailable: b.ProjectorAvailable,
		CreatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:                 b.ID,
		Name:               b.Name,
		Capacity:           b.Capacity,
		ProjectorAvailable: b.ProjectorAvailable,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (b *RoomBuilder) BuildCommand() commands.RoomRequest {
	return commands.RoomRequest{
		Name:               b.Name,
		Capacity:           b.Capacity,
		ProjectorAvailable: b.ProjectorAvailable,
	}
}

func (b *RoomBuilder) BuildRequestDTO() reqdto.RoomRequest {
	return reqdto.RoomRequest{
		Name:               b.Name,
		Capacity:           b.Capacity,
		ProjectorAvailable: b.ProjectorAvailable,
	}
}
