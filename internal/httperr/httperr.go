package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Message string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Message: message,
		Code:    code,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// NotFound and Internal keep the generic bodies the frontend expects.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, HTTPError{Message: "Not found"})
}

func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, HTTPError{Message: "Internal server error"})
}
