package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Respond maps a core error to its HTTP shape, kind preserved. Errors
// that are none of the four kinds render as an opaque 500.
func Respond(c *gin.Context, err error) {
	var ve ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "validation_failed",
			Message: "Invalid input.",
			Fields:  ve.Fields,
		})
		return
	}

	var nf NotFoundError
	if errors.As(err, &nf) {
		Write(c, http.StatusNotFound, "not_found", nf.Error())
		return
	}

	var ce ConflictError
	if errors.As(err, &ce) {
		Write(c, http.StatusConflict, ce.Code, "The operation conflicted with a concurrent change.")
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		Write(c, http.StatusUnprocessableEntity, be.Code, "The request violates a business rule.")
		return
	}

	Internal(c, "internal_error", "Something went wrong.")
}
