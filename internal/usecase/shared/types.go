package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshot, kept apart from read-side views (CQRS separation)
type RoomSnapshot struct {
	ID                 uuid.UUID
	Name               string
	Capacity           int
	ProjectorAvailable bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
