package reservation

import (
	"errors"
	"time"

	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDateRequired    = errs.Validation(errors.New("reservation date is required"))
	ErrInvalidDate     = errs.Validation(errors.New("reservation date must be in YYYY-MM-DD format"))
	ErrDateInPast      = errs.Validation(errors.New("reservation date is in the past"))
	ErrAlreadyReserved = errs.Validation(errors.New("room is already reserved on this date"))
)

type Services struct {
	Clock clock.Clock
}

// Today is the current calendar day as seen by the service clock.
func (s *Services) Today() Date {
	return DateOf(s.Clock.Now())
}

type Reservation struct {
	id        uuid.UUID
	roomID    uuid.UUID
	date      Date
	comment   Comment
	createdAt time.Time
}

func NewReservation(services *Services, roomID uuid.UUID, date Date, comment Comment) (*Reservation, error) {
	now := services.Clock.Now()
	if err := ValidateBookingDate(date, DateOf(now)); err != nil {
		return nil, err
	}

	return &Reservation{
		id:        uuid.New(),
		roomID:    roomID,
		date:      date,
		comment:   comment,
		createdAt: now,
	}, nil
}

func ReconstructReservation(id, roomID uuid.UUID, date Date, comment *string, createdAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		roomID:    roomID,
		date:      date,
		comment:   Comment{text: comment},
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) Date() Date           { return r.date }
func (r *Reservation) Comment() Comment     { return r.comment }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
