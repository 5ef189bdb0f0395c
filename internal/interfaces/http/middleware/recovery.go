package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/shared/constants"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils"
)

// Recovery turns a handler panic into a 500 envelope. A client that hung up
// mid-response is only logged, since nothing can be written back to it.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		defer c.Abort()

		fields := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"request_id", c.GetString(constants.ContextKeyRequestID),
			"error", recovered,
		}

		if clientGone(recovered) {
			log.Warnw("client went away during response", fields...)
			return
		}

		log.Errorw("handler panicked", append(fields, "stack", string(debug.Stack()))...)
		if !c.Writer.Written() {
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		}
	})
}

func clientGone(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, http.ErrAbortHandler)
}
