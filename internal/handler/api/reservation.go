package api

import (
	"net/http"

	"room-booking/internal/domain/reservation"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds  commands.ReservationCommands
	q     queries.ReservationQueries
	clock clock.Clock
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, clk clock.Clock) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Reserve room
// @Description Reserve a room for one calendar day
// @Tags reservations
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{id}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBind(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	cmd, err := req.ToCommand(roomID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	created, err := h.cmds.CreateReservation(c.Request.Context(), cmd)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(created))
}

// @Summary List upcoming reservations
// @Description Reservations of a room dated on or after "from" (default today), ascending
// @Tags reservations
// @Produce json
// @Param id path string true "Room ID"
// @Param from query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/reservations [get]
func (h *ReservationHandler) ListUpcoming(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}
	var query reqdto.UpcomingReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	asOf, err := query.AsOf(reservation.DateOf(h.clock.Now()))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	views, err := h.q.ListUpcoming(c.Request.Context(), roomID, asOf)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromReservationViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check reservation
// @Description Whether a room is reserved on a given day
// @Tags reservations
// @Produce json
// @Param id path string true "Room ID"
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} resdto.ReservationStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/reservations/{date} [get]
func (h *ReservationHandler) Status(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}
	date, err := reservation.ParseDate(c.Param("date"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	reserved, err := h.q.IsReserved(c.Request.Context(), roomID, date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReservationStatusResponse{
		RoomID:   roomID,
		Date:     date.String(),
		Reserved: reserved,
	})
}
