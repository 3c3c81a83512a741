package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"artify-server/internal/apperr"
	"artify-server/internal/logging"
)

// Abort logs err and writes {"message": ...}. Server-side failures get the
// route's generic message; client errors echo the classified error text.
func Abort(c *gin.Context, err error, message string) {
	status := apperr.Status(err)

	log := logging.FromGin(c)
	ev := log.Error()
	if status < http.StatusInternalServerError {
		ev = log.Warn()
	}
	ev.Err(err).
		Str("method", c.Request.Method).
		Str("route", c.FullPath()).
		Int("status", status).
		Msg(message)

	if errors.Is(err, apperr.ErrInvalidArgument) {
		message = err.Error()
	}
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// BadBody wraps a binding failure as an invalid argument.
func BadBody(err error) error {
	return apperr.InvalidArgument("malformed request body: %v", err)
}
