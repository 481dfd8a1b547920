package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCommands interface {
	CreateRoom(ctx context.Context, req RoomRequest) (*room.Room, error)
	UpdateRoom(ctx context.Context, roomID uuid.UUID, req RoomRequest) (*room.Room, error)
	DeleteRoom(ctx context.Context, roomID uuid.UUID) error
}

type roomUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomUseCase(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomUseCaseImpl{uow: uow, clock: clk}
}

// RoomRequest carries already-parsed boundary values; CreateRoom and UpdateRoom share it.
type RoomRequest struct {
	Name               string
	Capacity           int
	ProjectorAvailable bool
}

func (uc *roomUseCaseImpl) CreateRoom(ctx context.Context, req RoomRequest) (*room.Room, error) {
	entity, err := room.NewRoom(req.Name, req.Capacity, req.ProjectorAvailable, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := ensureNameAvailable(ctx, tx.Reads(), entity); derr != nil {
			return derr
		}
		if derr := tx.Rooms().Create(ctx, entity); derr != nil {
			return translateRoomWriteErr(derr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("room created", "room_id", entity.ID().String(), "name", entity.Name().String())
	return entity, nil
}

func (uc *roomUseCaseImpl) UpdateRoom(ctx context.Context, roomID uuid.UUID, req RoomRequest) (*room.Room, error) {
	var updated *room.Room
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RoomByID(ctx, roomID)
		if derr != nil {
			return translateRoomLookupErr(derr)
		}

		entity := room.ReconstructRoom(snap.ID, snap.Name, snap.Capacity, snap.ProjectorAvailable, snap.CreatedAt, snap.UpdatedAt)
		if derr = entity.Modify(req.Name, req.Capacity, req.ProjectorAvailable, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = ensureNameAvailable(ctx, tx.Reads(), entity); derr != nil {
			return derr
		}
		if derr = tx.Rooms().Update(ctx, entity); derr != nil {
			return translateRoomWriteErr(derr)
		}
		updated = entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteRoom removes the room's reservations and then the room in one transaction.
func (uc *roomUseCaseImpl) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	var cascaded int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Reservations().DeleteByRoomID(ctx, roomID)
		if derr != nil {
			return derr
		}
		if derr = tx.Rooms().Delete(ctx, roomID); derr != nil {
			return translateRoomWriteErr(derr)
		}
		cascaded = n
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("room deleted", "room_id", roomID.String(), "reservations_deleted", cascaded)
	return nil
}

func ensureNameAvailable(ctx context.Context, reads shared.CommandReads, entity *room.Room) error {
	holder, err := reads.RoomByName(ctx, entity.Name().String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	return room.CheckNameAvailable(holder.ID, entity.ID())
}

// A duplicate key here means another transaction took the name after the pre-check.
func translateRoomWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return room.ErrNameTaken
	case infra.IsKind(err, infra.KindNotFound):
		return room.ErrNotFound
	default:
		return err
	}
}

func translateRoomLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return room.ErrNotFound
	}
	return err
}
