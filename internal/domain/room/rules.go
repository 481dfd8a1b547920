package room

import "github.com/google/uuid"

// CheckNameAvailable fails when the name is held by a room other than selfID.
// holderID is uuid.Nil when no room uses the name.
func CheckNameAvailable(holderID, selfID uuid.UUID) error {
	if holderID == uuid.Nil || holderID == selfID {
		return nil
	}
	return ErrNameTaken
}
