package response

import (
	"errors"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"roomId"`
	Date      string    `json:"date"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Calendar days travel as YYYY-MM-DD.
var dateOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, errors.New("src type not matching")
				}
				return t.Format(reservation.DateLayout), nil
			},
		},
	},
}

type ReservationStatusResponse struct {
	RoomID   uuid.UUID `json:"roomId"`
	Date     string    `json:"date"`
	Reserved bool      `json:"reserved"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID(),
		RoomID:    r.RoomID(),
		Date:      r.Date().String(),
		Comment:   r.Comment().Ptr(),
		CreatedAt: r.CreatedAt(),
	}
}

func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	res := make([]*ReservationResponse, 0, len(views))
	if err := copier.CopyWithOption(&res, &views, dateOption); err != nil {
		return nil, err
	}
	return res, nil
}
