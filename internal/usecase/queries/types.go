package queries

import (
	"time"

	"github.com/google/uuid"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Capacity           int       `json:"capacity"`
	ProjectorAvailable bool      `json:"projector_available"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type RoomListItem struct {
	RoomView
	ReservedToday bool `json:"reserved_today"`
}

type RoomDetailView struct {
	RoomView
	UpcomingReservations []*ReservationView `json:"upcoming_reservations"`
}

// ReservationView represents read-optimized reservation data.
// Date is the calendar day at midnight UTC.
type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	Date      time.Time `json:"date"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
