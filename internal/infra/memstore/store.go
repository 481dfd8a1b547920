// Package memstore is an in-memory implementation of the unit of work and read stores.
// Transactions are serialized; a failed transaction leaves no trace.
package memstore

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errUniqueRoomName        = errors.New("duplicate key value violates unique constraint \"rooms_name_key\"")
	errUniqueReservationSlot = errors.New("duplicate key value violates unique constraint \"reservations_room_id_date_key\"")
	errMissingRoom           = errors.New("insert on table \"reservations\" violates foreign key constraint")
)

type roomRow struct {
	id                 uuid.UUID
	name               string
	capacity           int
	projectorAvailable bool
	createdAt          time.Time
	updatedAt          time.Time
}

type reservationRow struct {
	id        uuid.UUID
	roomID    uuid.UUID
	date      reservation.Date
	comment   *string
	createdAt time.Time
}

type state struct {
	rooms        map[uuid.UUID]roomRow
	reservations map[uuid.UUID]reservationRow
}

func (s *state) clone() *state {
	return &state{
		rooms:        maps.Clone(s.rooms),
		reservations: maps.Clone(s.reservations),
	}
}

type Store struct {
	mu    sync.Mutex
	state *state
}

func New() *Store {
	return &Store{
		state: &state{
			rooms:        make(map[uuid.UUID]roomRow),
			reservations: make(map[uuid.UUID]reservationRow),
		},
	}
}

// Within runs fn against a private copy and publishes it only when fn succeeds.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.state.clone()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) RoomReads() *RoomReadStore {
	return &RoomReadStore{store: s}
}

func (s *Store) ReservationReads() *ReservationReadStore {
	return &ReservationReadStore{store: s}
}

func (s *Store) snapshot() *state {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

type memTx struct {
	st *state
}

func (t *memTx) Rooms() shared.RoomRepository {
	return &roomRepo{st: t.st}
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return &reservationRepo{st: t.st}
}

func (t *memTx) Reads() shared.CommandReads {
	return &txReads{st: t.st}
}

// sortedRooms orders rooms by created_at, id.
func (s *state) sortedRooms() []roomRow {
	rows := slices.Collect(maps.Values(s.rooms))
	slices.SortFunc(rows, func(a, b roomRow) int {
		if c := a.createdAt.Compare(b.createdAt); c != 0 {
			return c
		}
		return bytes.Compare(a.id[:], b.id[:])
	})
	return rows
}

func (s *state) roomByName(name string) (roomRow, bool) {
	for _, r := range s.rooms {
		if r.name == name {
			return r, true
		}
	}
	return roomRow{}, false
}

func (s *state) reserved(roomID uuid.UUID, date reservation.Date) bool {
	for _, r := range s.reservations {
		if r.roomID == roomID && r.date.Equal(date) {
			return true
		}
	}
	return false
}

func (s *state) upcoming(roomID uuid.UUID, from reservation.Date) []reservationRow {
	var rows []reservationRow
	for _, r := range s.reservations {
		if r.roomID == roomID && !r.date.Before(from) {
			rows = append(rows, r)
		}
	}
	slices.SortFunc(rows, func(a, b reservationRow) int {
		return a.date.Time().Compare(b.date.Time())
	})
	return rows
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}
