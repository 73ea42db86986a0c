package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesto-app/mesto-api/pkg/apperror"
)

// Body is the uniform JSON shape for non-resource responses.
type Body struct {
	Message string `json:"message"`
}

// Message writes a confirmation body with the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Message: message})
}

// Error is the centralized error responder: 4xx errors surface their own
// message, server faults get a fixed generic one so internals never leak.
func Error(c *gin.Context, err error) {
	status := apperror.Status(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "Internal server error"
	}
	c.AbortWithStatusJSON(status, Body{Message: msg})
}
