package request

import (
	"room-booking/internal/domain/reservation"
	"room-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	Date    string  `json:"date" form:"date"`
	Comment *string `json:"comment,omitempty" form:"comment"`
}

func (r CreateReservationRequest) ToCommand(roomID uuid.UUID) (commands.CreateReservationRequest, error) {
	date, err := reservation.ParseDate(r.Date)
	if err != nil {
		return commands.CreateReservationRequest{}, err
	}
	return commands.CreateReservationRequest{
		RoomID:  roomID,
		Date:    date,
		Comment: r.Comment,
	}, nil
}

type UpcomingReservationsQuery struct {
	From string `form:"from"`
}

// AsOf falls back to today when no date is given.
func (q UpcomingReservationsQuery) AsOf(today reservation.Date) (reservation.Date, error) {
	return dateOrDefault(q.From, today)
}
