//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra/memstore"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type reservationCommandsSuite struct {
	useCaseSuite
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(reservationCommandsSuite))
}

func strPtr(s string) *string { return &s }

func (s *reservationCommandsSuite) TestCreateReservation() {
	june1 := reservation.NewDate(2025, time.June, 1)

	s.Run("success", func() {
		s.SetupTest()
		r := s.createRoom("Lab A", 20, true)

		res, err := s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{
			RoomID:  r.ID(),
			Date:    june1,
			Comment: strPtr(" Team sync "),
		})
		s.Require().NoError(err)
		s.Equal(r.ID(), res.RoomID())
		s.Equal("2025-06-01", res.Date().String())
		s.Equal(" Team sync ", res.Comment().String())

		upcoming, err := s.resQueries.ListUpcoming(s.ctx, r.ID(), reservation.DateOf(fixedNow))
		s.Require().NoError(err)
		s.Require().Len(upcoming, 1)
		s.Equal(res.ID(), upcoming[0].ID)
		s.Equal(" Team sync ", *upcoming[0].Comment)
	})

	s.Run("blank comment is stored as absent", func() {
		s.SetupTest()
		r := s.createRoom("Lab A", 20, true)

		res, err := s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: r.ID(), Date: june1, Comment: strPtr("  ")})
		s.Require().NoError(err)
		s.Nil(res.Comment().Ptr())
	})

	s.Run("today can be booked", func() {
		s.SetupTest()
		r := s.createRoom("Lab A", 20, true)
		_, err := s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: r.ID(), Date: reservation.DateOf(s.clock.Now())})
		s.NoError(err)
	})

	s.Run("past date is rejected", func() {
		s.SetupTest()
		r := s.createRoom("Lab A", 20, true)

		_, err := s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: r.ID(), Date: reservation.NewDate(2025, time.May, 19)})
		s.ErrorIs(err, reservation.ErrDateInPast)
		s.True(errs.IsValidation(err))
	})

	s.Run("missing date is rejected", func() {
		s.SetupTest()
		r := s.createRoom("Lab A", 20, true)

		_, err := s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: r.ID()})
		s.ErrorIs(err, reservation.ErrDateRequired)
	})

	s.Run("unknown room is not found", func() {
		s.SetupTest()
		_, err := s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: uuid.New(), Date: june1})
		s.ErrorIs(err, room.ErrNotFound)
		s.True(errs.IsNotFound(err))
	})

	s.Run("second booking of the same slot is rejected", func() {
		s.SetupTest()
		r := s.createRoom("Lab A", 20, true)
		s.book(r.ID(), june1)

		_, err := s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: r.ID(), Date: june1})
		s.ErrorIs(err, reservation.ErrAlreadyReserved)
		s.True(errs.IsValidation(err))

		upcoming, err := s.resQueries.ListUpcoming(s.ctx, r.ID(), june1)
		s.Require().NoError(err)
		s.Len(upcoming, 1)
	})

	s.Run("same date in another room is fine", func() {
		s.SetupTest()
		a := s.createRoom("Lab A", 20, true)
		b := s.createRoom("Lab B", 10, false)
		s.book(a.ID(), june1)

		_, err := s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: b.ID(), Date: june1})
		s.NoError(err)
	})

	s.Run("store-level conflict after a passing pre-check is rejected the same way", func() {
		s.SetupTest()
		r := s.createRoom("Lab A", 20, true)
		s.book(r.ID(), june1)

		racing := commands.NewReservationUseCase(blindUoW{s.store}, &reservation.Services{Clock: s.clock})
		_, err := racing.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: r.ID(), Date: june1})
		s.ErrorIs(err, reservation.ErrAlreadyReserved)
	})
}

// Lab A walkthrough: create, book, rebook, book in the past.
func (s *reservationCommandsSuite) TestLabAScenario() {
	lab, err := s.rooms.CreateRoom(s.ctx, commands.RoomRequest{Name: "Lab A", Capacity: 20, ProjectorAvailable: true})
	s.Require().NoError(err)

	june1 := reservation.NewDate(2025, time.June, 1)
	_, err = s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: lab.ID(), Date: june1, Comment: strPtr("Team sync")})
	s.Require().NoError(err)

	_, err = s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: lab.ID(), Date: june1})
	s.ErrorIs(err, reservation.ErrAlreadyReserved)

	_, err = s.reservations.CreateReservation(s.ctx, commands.CreateReservationRequest{RoomID: lab.ID(), Date: reservation.NewDate(2020, time.January, 1)})
	s.ErrorIs(err, reservation.ErrDateInPast)

	upcoming, err := s.resQueries.ListUpcoming(s.ctx, lab.ID(), reservation.DateOf(fixedNow))
	s.Require().NoError(err)
	s.Require().Len(upcoming, 1)
	s.Equal("Team sync", *upcoming[0].Comment)
}

// blindUoW hides existing bookings from the pre-check, as a concurrent writer would.
type blindUoW struct {
	*memstore.Store
}

func (u blindUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.Store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, blindTx{tx})
	})
}

type blindTx struct {
	shared.Tx
}

func (t blindTx) Reads() shared.CommandReads {
	return blindReads{t.Tx.Reads()}
}

type blindReads struct {
	shared.CommandReads
}

func (blindReads) IsReserved(context.Context, uuid.UUID, reservation.Date) (bool, error) {
	return false, nil
}

