//go:build unit

package repository_test

import (
	"context"
	"testing"

	"room-booking/internal/infra"
	"room-booking/internal/infra/repository"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/tests/common/builder"
	repositorymock "room-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationRepository_Create(t *testing.T) {
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "slot already taken", mockError: uniqueViolation(infra.ConstraintReservationSlot), wantKind: infra.KindDuplicateKey},
		{name: "room vanished", mockError: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockReservationWriteQueries(ctrl)
			q.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
					assert.Equal(t, res.RoomID(), arg.RoomID)
					assert.True(t, arg.Date.Valid)
					assert.Equal(t, "2025-06-01", arg.Date.Time.Format("2006-01-02"))
					assert.Equal(t, "Team sync", arg.Comment.String)
					return tt.mockError
				}).Times(1)

			err := repository.NewReservationRepository(q, nil).Create(context.Background(), res)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}

	t.Run("absent comment is stored as NULL", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().WithComment(nil).BuildDomain()
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		q.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
				assert.False(t, arg.Comment.Valid)
				return nil
			}).Times(1)

		assert.NoError(t, repository.NewReservationRepository(q, nil).Create(context.Background(), res))
	})
}

func TestReservationRepository_DeleteByRoomID(t *testing.T) {
	roomID := uuid.New()

	t.Run("returns deleted count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		q.EXPECT().DeleteReservationsByRoomID(gomock.Any(), gomock.Any(), roomID).Return(int64(2), nil).Times(1)

		n, err := repository.NewReservationRepository(q, nil).DeleteByRoomID(context.Background(), roomID)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		q.EXPECT().DeleteReservationsByRoomID(gomock.Any(), gomock.Any(), roomID).Return(int64(0), assert.AnError).Times(1)

		_, err := repository.NewReservationRepository(q, nil).DeleteByRoomID(context.Background(), roomID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
