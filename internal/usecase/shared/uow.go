package shared

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Repositories obtained from a Tx are bound to that transaction.
type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Reads() CommandReads
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	RoomByName(ctx context.Context, name string) (*RoomSnapshot, error)
	IsReserved(ctx context.Context, roomID uuid.UUID, date reservation.Date) (bool, error)
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	DeleteByRoomID(ctx context.Context, roomID uuid.UUID) (int64, error)
}
