package room

import (
	"errors"
	"time"

	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName           = errs.Validation(errors.New("room name is required"))
	ErrNameTooLong         = errs.Validation(errors.New("room name is too long (max 50 characters)"))
	ErrNonPositiveCapacity = errs.Validation(errors.New("room capacity must be a positive number"))
	ErrCapacityTooLarge    = errs.Validation(errors.New("room capacity is too large"))
	ErrNameTaken           = errs.Validation(errors.New("a room with this name already exists"))

	ErrNotFound = errs.NotFound(errors.New("room not found"))
)

type Room struct {
	id                 uuid.UUID
	name               Name
	capacity           Capacity
	projectorAvailable bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewRoom(name string, capacity int, projectorAvailable bool, now time.Time) (*Room, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	c, err := NewCapacity(capacity)
	if err != nil {
		return nil, err
	}

	return &Room{
		id:                 uuid.New(),
		name:               n,
		capacity:           c,
		projectorAvailable: projectorAvailable,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructRoom rebuilds a stored room without re-running validation.
func ReconstructRoom(id uuid.UUID, name string, capacity int, projectorAvailable bool, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:                 id,
		name:               Name{value: name},
		capacity:           Capacity{value: capacity},
		projectorAvailable: projectorAvailable,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Modify replaces every mutable attribute. The room is left untouched on error.
func (r *Room) Modify(name string, capacity int, projectorAvailable bool, now time.Time) error {
	n, err := NewName(name)
	if err != nil {
		return err
	}
	c, err := NewCapacity(capacity)
	if err != nil {
		return err
	}

	r.name = n
	r.capacity = c
	r.projectorAvailable = projectorAvailable
	r.updatedAt = now
	return nil
}

func (r *Room) ID() uuid.UUID            { return r.id }
func (r *Room) Name() Name               { return r.name }
func (r *Room) Capacity() Capacity       { return r.capacity }
func (r *Room) ProjectorAvailable() bool { return r.projectorAvailable }
func (r *Room) CreatedAt() time.Time     { return r.createdAt }
func (r *Room) UpdatedAt() time.Time     { return r.updatedAt }
