//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/reservation"
	reqdto "room-booking/internal/handler/dto/request"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	Date      reservation.Date
	Comment   *string
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	comment := "Team sync"
	return &ReservationBuilder{
		ID:        uuid.New(),
		RoomID:    uuid.New(),
		Date:      reservation.NewDate(2025, time.June, 1),
		Comment:   &comment,
		CreatedAt: time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithRoomID(id uuid.UUID) *ReservationBuilder {
	b.RoomID = id
	return b
}

func (b *ReservationBuilder) WithDate(d reservation.Date) *ReservationBuilder {
	b.Date = d
	return b
}

func (b *ReservationBuilder) WithComment(c *string) *ReservationBuilder {
	b.Comment = c
	return b
}

// Build methods

// BuildDomain validates against a clock fixed at CreatedAt.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	services := &reservation.Services{Clock: clock.NewMockClock(b.CreatedAt)}
	return reservation.NewReservation(services, b.RoomID, b.Date, reservation.NewComment(b.Comment))
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	row := sqlc.Reservations{
		ID:        b.ID,
		RoomID:    b.RoomID,
		Date:      pgtype.Date{Time: b.Date.Time(), Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.Comment != nil {
		row.Comment = pgtype.Text{String: *b.Comment, Valid: true}
	}
	return row
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        b.ID,
		RoomID:    b.RoomID,
		Date:      b.Date.Time(),
		Comment:   b.Comment,
		CreatedAt: b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		RoomID:  b.RoomID,
		Date:    b.Date,
		Comment: b.Comment,
	}
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Date:    b.Date.String(),
		Comment: b.Comment,
	}
}
