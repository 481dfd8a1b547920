//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/availability"
	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra/memstore"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type queriesSuite struct {
	suite.Suite
	ctx          context.Context
	clock        *clock.MockClock
	rooms        commands.RoomCommands
	reservations commands.ReservationCommands
	roomQ        queries.RoomQueries
	resQ         queries.ReservationQueries
	availQ       queries.AvailabilityQueries
}

func TestQueriesSuite(t *testing.T) {
	suite.Run(t, new(queriesSuite))
}

func (s *queriesSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC))

	store := memstore.New()
	s.rooms = commands.NewRoomUseCase(store, s.clock)
	s.reservations = commands.NewReservationUseCase(store, &reservation.Services{Clock: s.clock})
	s.roomQ = queries.NewRoomQueries(store.RoomReads(), store.ReservationReads(), s.clock)
	s.resQ = queries.NewReservationQueries(store.RoomReads(), store.ReservationReads())
	s.availQ = queries.NewAvailabilityQueries(store.RoomReads(), store.ReservationReads())
}

func (s *queriesSuite) room(name string, capacity int, projector bool) uuid.UUID {
	r, err := s.rooms.CreateRoom(s.ctx, commands.RoomRequest{Name: name, Capacity: capacity, ProjectorAvailable: projector})
	s.Require().NoError(err)
	s.clock.Add(time.Minute)
	return r.ID()
}

func (s *queriesSuite) book(roomID uuid.UUID, d reservation.Date) {
	_, err := s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: roomID, Date: d})
	s.Require().NoError(err)
}

func names(views []*queries.RoomView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Name
	}
	return out
}

func (s *queriesSuite) TestListRooms_OrderAndReservedToday() {
	first := s.room("Zeta", 4, false)
	second := s.room("Alpha", 8, true)
	s.book(second, reservation.DateOf(s.clock.Now()))

	list, err := s.roomQ.ListRooms(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)

	s.Equal(first, list[0].ID)
	s.False(list[0].ReservedToday)
	s.Equal(second, list[1].ID)
	s.True(list[1].ReservedToday)
}

func (s *queriesSuite) TestGetRoom_UpcomingOnly() {
	id := s.room("Lab A", 20, true)
	s.book(id, reservation.NewDate(2025, time.June, 3))
	s.book(id, reservation.NewDate(2025, time.May, 21))
	s.book(id, reservation.NewDate(2025, time.May, 20))

	// the May 20 booking becomes past once the clock moves on
	s.clock.Set(time.Date(2025, 5, 21, 8, 0, 0, 0, time.UTC))

	detail, err := s.roomQ.GetRoom(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Lab A", detail.Name)

	dates := make([]string, len(detail.UpcomingReservations))
	for i, r := range detail.UpcomingReservations {
		dates[i] = r.Date.Format(reservation.DateLayout)
	}
	s.Equal([]string{"2025-05-21", "2025-06-03"}, dates)
}

func (s *queriesSuite) TestGetRoom_NotFound() {
	_, err := s.roomQ.GetRoom(s.ctx, uuid.New())
	s.ErrorIs(err, room.ErrNotFound)
}

func (s *queriesSuite) TestListUpcoming() {
	id := s.room("Lab A", 20, true)
	s.book(id, reservation.NewDate(2025, time.June, 10))
	s.book(id, reservation.NewDate(2025, time.June, 1))
	s.book(id, reservation.NewDate(2025, time.May, 25))

	actual, err := s.resQ.ListUpcoming(s.ctx, id, reservation.NewDate(2025, time.June, 1))
	s.Require().NoError(err)
	s.Require().Len(actual, 2)
	s.Equal("2025-06-01", actual[0].Date.Format(reservation.DateLayout))
	s.Equal("2025-06-10", actual[1].Date.Format(reservation.DateLayout))

	_, err = s.resQ.ListUpcoming(s.ctx, uuid.New(), reservation.NewDate(2025, time.June, 1))
	s.ErrorIs(err, room.ErrNotFound)
}

func (s *queriesSuite) TestIsReserved() {
	june1 := reservation.NewDate(2025, time.June, 1)
	lab := s.room("Lab A", 20, true)
	other := s.room("Lab B", 8, false)
	s.book(lab, june1)

	testCases := []struct {
		name     string
		roomID   uuid.UUID
		date     reservation.Date
		expected bool
	}{
		{name: "booked day", roomID: lab, date: june1, expected: true},
		{name: "next day", roomID: lab, date: june1.AddDays(1), expected: false},
		{name: "other room same day", roomID: other, date: june1, expected: false},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			actual, err := s.resQ.IsReserved(s.ctx, tc.roomID, tc.date)
			s.Require().NoError(err)
			s.Equal(tc.expected, actual)
		})
	}

	_, err := s.resQ.IsReserved(s.ctx, uuid.New(), june1)
	s.ErrorIs(err, room.ErrNotFound)
}

func (s *queriesSuite) TestSearchAvailable() {
	june1 := reservation.NewDate(2025, time.June, 1)
	small := s.room("Small", 5, false)
	s.room("Large", 20, true)
	booked := s.room("Booked", 30, true)
	s.room("Medium", 10, false)
	s.book(booked, june1)
	s.book(small, june1.AddDays(1))

	ten := 10
	zero := 0
	testCases := []struct {
		name     string
		asOf     reservation.Date
		criteria availability.Criteria
		expected []string
	}{
		{name: "min capacity 10", asOf: june1, criteria: availability.Criteria{MinCapacity: &ten}, expected: []string{"Large", "Medium"}},
		{name: "projector required", asOf: june1, criteria: availability.Criteria{RequireProjector: true}, expected: []string{"Large"}},
		{name: "no filters", asOf: june1, criteria: availability.Criteria{}, expected: []string{}},
		{name: "booking on another day does not block", asOf: june1, criteria: availability.Criteria{MinCapacity: &zero}, expected: []string{"Small", "Large", "Medium"}},
		{name: "same-day booking blocks", asOf: june1.AddDays(1), criteria: availability.Criteria{MinCapacity: &zero}, expected: []string{"Large", "Booked", "Medium"}},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			actual, err := s.availQ.SearchAvailable(s.ctx, tc.asOf, tc.criteria)
			s.Require().NoError(err)
			if diff := cmp.Diff(tc.expected, names(actual)); diff != "" {
				s.T().Errorf("SearchAvailable() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
