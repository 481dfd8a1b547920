package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *reservation.Services
}

func NewReservationUseCase(uow shared.UnitOfWork, services *reservation.Services) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, services: services}
}

type CreateReservationRequest struct {
	RoomID  uuid.UUID
	Date    reservation.Date
	Comment *string
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, req CreateReservationRequest) (*reservation.Reservation, error) {
	var created *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().RoomByID(ctx, req.RoomID); derr != nil {
			return translateRoomLookupErr(derr)
		}

		res, derr := reservation.NewReservation(uc.services, req.RoomID, req.Date, reservation.NewComment(req.Comment))
		if derr != nil {
			return derr
		}

		reserved, derr := tx.Reads().IsReserved(ctx, req.RoomID, req.Date)
		if derr != nil {
			return derr
		}
		if derr = reservation.EnsureNotReserved(reserved); derr != nil {
			return derr
		}

		if derr = tx.Reservations().Create(ctx, res); derr != nil {
			return translateReservationWriteErr(derr)
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation created",
		"reservation_id", created.ID().String(),
		"room_id", created.RoomID().String(),
		"date", created.Date().String())
	return created, nil
}

// A duplicate key means a concurrent booking won the (room_id, date) slot.
func translateReservationWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return reservation.ErrAlreadyReserved
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return room.ErrNotFound
	default:
		return err
	}
}
