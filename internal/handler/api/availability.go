package api

import (
	"net/http"

	"room-booking/internal/domain/reservation"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q     queries.AvailabilityQueries
	clock clock.Clock
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, clk clock.Clock) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, clock: clk}
}

// @Summary Search available rooms
// @Description Rooms free on the given date (default today) matching the filters. Without any filter the result is empty.
// @Tags availability
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Param capacity query int false "Minimum capacity"
// @Param projector query string false "on / true / 1 to require a projector"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) Search(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	asOf, err := query.AsOf(reservation.DateOf(h.clock.Now()))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	criteria, err := query.ToCriteria()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	views, err := h.q.SearchAvailable(c.Request.Context(), asOf, criteria)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
