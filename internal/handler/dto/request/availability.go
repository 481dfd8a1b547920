package request

import (
	"errors"
	"strconv"
	"strings"

	"room-booking/internal/domain/availability"
	"room-booking/internal/domain/reservation"
	"room-booking/internal/pkg/errs"
)

var ErrInvalidCapacityFilter = errs.Validation(errors.New("capacity filter must be a whole number"))

type AvailabilityQuery struct {
	Date      string `form:"date"`
	Capacity  string `form:"capacity"`
	Projector string `form:"projector"`
}

// ToCriteria leaves MinCapacity nil when the capacity field is blank.
func (q AvailabilityQuery) ToCriteria() (availability.Criteria, error) {
	criteria := availability.Criteria{RequireProjector: Checked(q.Projector)}

	raw := strings.TrimSpace(q.Capacity)
	if raw == "" {
		return criteria, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return availability.Criteria{}, ErrInvalidCapacityFilter
	}
	criteria.MinCapacity = &n
	return criteria, nil
}

func (q AvailabilityQuery) AsOf(today reservation.Date) (reservation.Date, error) {
	return dateOrDefault(q.Date, today)
}

func dateOrDefault(raw string, fallback reservation.Date) (reservation.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return reservation.ParseDate(raw)
}
