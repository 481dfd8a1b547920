package readstore

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra"
	"room-booking/internal/infra/repository/converter"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadQueries interface {
	ListUpcomingReservationsByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingReservationsByRoomParams) ([]sqlc.Reservations, error)
	ReservationExists(ctx context.Context, db sqlc.DBTX, arg sqlc.ReservationExistsParams) (bool, error)
	ListReservedRoomIDsOnDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]uuid.UUID, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// FindUpcomingByRoom returns reservations dated on or after from, ascending by date.
func (r *ReservationReadStore) FindUpcomingByRoom(ctx context.Context, roomID uuid.UUID, from reservation.Date) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListUpcomingReservationsByRoom(ctx, r.db, sqlc.ListUpcomingReservationsByRoomParams{
		RoomID: roomID,
		Date:   converter.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming reservations", err)
	}
	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = &queries.ReservationView{
			ID:        row.ID,
			RoomID:    row.RoomID,
			Date:      pgconv.TimeFromPgDate(row.Date),
			Comment:   pgconv.StringPtrFromPgtype(row.Comment),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

func (r *ReservationReadStore) ExistsOn(ctx context.Context, roomID uuid.UUID, date reservation.Date) (bool, error) {
	exists, err := r.queries.ReservationExists(ctx, r.db, sqlc.ReservationExistsParams{
		RoomID: roomID,
		Date:   converter.DateToPgtype(date),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation", err)
	}
	return exists, nil
}

func (r *ReservationReadStore) RoomIDsReservedOn(ctx context.Context, date reservation.Date) ([]uuid.UUID, error) {
	ids, err := r.queries.ListReservedRoomIDsOnDate(ctx, r.db, converter.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reserved rooms", err)
	}
	return ids, nil
}
