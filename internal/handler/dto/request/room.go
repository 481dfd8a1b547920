package request

import (
	"strings"

	"room-booking/internal/usecase/commands"
)

// RoomRequest accepts either a JSON body or the HTML form fields of the room editor.
type RoomRequest struct {
	Name               string `json:"name" form:"room-name"`
	Capacity           int    `json:"capacity" form:"room-capacity"`
	ProjectorAvailable bool   `json:"projectorAvailable" form:"-"`
	ProjectorCheckbox  string `json:"-" form:"room-projector"`
}

func (r RoomRequest) ToCommand() commands.RoomRequest {
	return commands.RoomRequest{
		Name:               r.Name,
		Capacity:           r.Capacity,
		ProjectorAvailable: r.ProjectorAvailable || Checked(r.ProjectorCheckbox),
	}
}

// Checked interprets an HTML checkbox or flag value.
func Checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
