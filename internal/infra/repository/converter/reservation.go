package converter

import (
	"room-booking/internal/domain/reservation"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:        res.ID(),
		RoomID:    res.RoomID(),
		Date:      DateToPgtype(res.Date()),
		Comment:   pgconv.StringPtrToPgtype(res.Comment().Ptr()),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func DateToPgtype(d reservation.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPgtype(pd pgtype.Date) reservation.Date {
	t := pgconv.TimeFromPgDate(pd)
	if t.IsZero() {
		return reservation.Date{}
	}
	return reservation.DateOf(t)
}
