package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerboard/internal/domain/dto"
)

// ErrorHandler converts errors attached to the gin context (via
// c.Error) into a standardized JSON error response, when the handler
// has not already written one.
//
// Behavior:
//   - Runs after the handler chain.
//   - If errors were collected and no body was written, responds with
//     the last error wrapped in dto.NewErrorResponse. The status code
//     defaults to 500 unless the handler already set one.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	last := c.Errors.Last().Err
	c.JSON(status, dto.NewErrorResponse("request failed", last))
}
