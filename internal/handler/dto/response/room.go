package response

import (
	"time"

	"room-booking/internal/domain/room"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Capacity           int       `json:"capacity"`
	ProjectorAvailable bool      `json:"projectorAvailable"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type RoomListItemResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Capacity           int       `json:"capacity"`
	ProjectorAvailable bool      `json:"projectorAvailable"`
	ReservedToday      bool      `json:"reservedToday"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type RoomDetailResponse struct {
	RoomResponse
	UpcomingReservations []*ReservationResponse `json:"upcomingReservations"`
}

func FromRoom(r *room.Room) *RoomResponse {
	return &RoomResponse{
		ID:                 r.ID(),
		Name:               r.Name().String(),
		Capacity:           r.Capacity().Value(),
		ProjectorAvailable: r.ProjectorAvailable(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}

func FromRoomViews(views []*queries.RoomView) ([]*RoomResponse, error) {
	res := make([]*RoomResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromRoomListItems(items []*queries.RoomListItem) ([]*RoomListItemResponse, error) {
	res := make([]*RoomListItemResponse, 0, len(items))
	if err := copier.Copy(&res, &items); err != nil {
		return nil, err
	}
	return res, nil
}

func FromRoomDetail(v *queries.RoomDetailView) (*RoomDetailResponse, error) {
	var res RoomDetailResponse
	if err := copier.Copy(&res.RoomResponse, &v.RoomView); err != nil {
		return nil, err
	}
	upcoming, err := FromReservationViews(v.UpcomingReservations)
	if err != nil {
		return nil, err
	}
	res.UpcomingReservations = upcoming
	return &res, nil
}
