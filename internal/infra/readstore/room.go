package readstore

import (
	"context"

	"room-booking/internal/infra"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	GetRoomByName(ctx context.Context, db sqlc.DBTX, name string) (sqlc.Rooms, error)
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by id", err)
	}
	return toRoomView(row), nil
}

func (r *RoomReadStore) FindByName(ctx context.Context, name string) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByName(ctx, r.db, name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by name", err)
	}
	return toRoomView(row), nil
}

// FindAll returns rooms ordered by created_at, id.
func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	views := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		views[i] = toRoomView(row)
	}
	return views, nil
}

func toRoomView(row sqlc.Rooms) *queries.RoomView {
	return &queries.RoomView{
		ID:                 row.ID,
		Name:               row.Name,
		Capacity:           int(row.Capacity),
		ProjectorAvailable: row.ProjectorAvailable,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
