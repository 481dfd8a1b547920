package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary List rooms
// @Description List all rooms in registration order, flagging rooms reserved today
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomListItemResponse
// @Failure 500 {object} httperr.Response
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	items, err := h.q.ListRooms(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomListItems(items)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create room
// @Description Register a new room. Accepts JSON or the room form fields.
// @Tags rooms
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body reqdto.RoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.RoomRequest
	if err := c.ShouldBind(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	created, err := h.cmds.CreateRoom(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/rooms/"+created.ID().String())
	c.JSON(http.StatusCreated, resdto.FromRoom(created))
}

// @Summary Get room
// @Description Room detail with reservations from today onward
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetRoom(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomDetail(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update room
// @Tags rooms
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomRequest true "Room"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	var req reqdto.RoomRequest
	if err := c.ShouldBind(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	updated, err := h.cmds.UpdateRoom(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoom(updated))
}

// @Summary Delete room
// @Description Delete a room together with all of its reservations
// @Tags rooms
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteRoom(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func roomIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortValidation(c, http.StatusBadRequest, err, "Invalid room id")
		return uuid.Nil, false
	}
	return id, true
}
