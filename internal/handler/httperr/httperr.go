package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Detail tells clients which class of failure occurred.
type Detail struct {
	Kind string `json:"kind"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func AbortValidation(c *gin.Context, status int, err error, msg string) {
	AbortWithError(c, status, err, msg, Detail{Kind: KindValidation})
}

func AbortNotFound(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusNotFound, err, msg, Detail{Kind: KindNotFound})
}
