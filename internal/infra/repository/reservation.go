package repository

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra"
	"room-booking/internal/infra/repository/converter"
	sqlc "room-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	DeleteReservationsByRoomID(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create surfaces a (room_id, date) collision as KindDuplicateKey.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) DeleteByRoomID(ctx context.Context, roomID uuid.UUID) (int64, error) {
	deleted, err := r.queries.DeleteReservationsByRoomID(ctx, r.db, roomID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservations of room", err)
	}
	return deleted, nil
}
