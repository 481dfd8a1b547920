//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestRoom inserts a room directly, bypassing the use cases.
func CreateTestRoom(t *testing.T, db DBLike, name string, capacity int, projector bool) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, name, capacity, projector_available) VALUES ($1, $2, $3, $4)",
		roomID, name, capacity, projector)
	require.NoError(t, err)

	return roomID
}

// CreateTestReservation inserts a reservation for day, which may lie in the past.
func CreateTestReservation(t *testing.T, db DBLike, roomID uuid.UUID, day time.Time, comment *string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reservations (id, room_id, date, comment) VALUES ($1, $2, $3, $4)",
		reservationID, roomID, day.Format("2006-01-02"), comment)
	require.NoError(t, err)

	return reservationID
}

func CountReservations(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE room_id = $1", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(Tables, ", ")+" CASCADE")
	return err
}
