package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fortunegablin-rgb/PSC170/internal/http/middleware"
	"github.com/fortunegablin-rgb/PSC170/internal/services"
)

var (
	guard     *services.DeductionGuard
	jwtSecret []byte
)

// Configure wires the process-wide dependencies the handlers need.
func Configure(g *services.DeductionGuard, secret []byte) {
	guard = g
	jwtSecret = secret
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"error":      message,
		"request_id": reqID,
	}
	if err != nil {
		payload["details"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
