package api

import (
	"net/http"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps error kinds onto HTTP statuses.
// Validation failures that collide with existing state answer 409.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.IsNotFound(err):
		httperr.AbortNotFound(c, err, err.Error())
	case errs.Is(err, room.ErrNameTaken), errs.Is(err, reservation.ErrAlreadyReserved):
		httperr.AbortValidation(c, http.StatusConflict, err, err.Error())
	case errs.IsValidation(err):
		httperr.AbortValidation(c, http.StatusBadRequest, err, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortValidation(c, http.StatusBadRequest, err, "Invalid request")
}
