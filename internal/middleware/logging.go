package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inventory-service/pkg/log"
)

// HeaderRequestID carries the request id in and out of the service.
const HeaderRequestID = "X-Request-ID"

// Logging tags every request with an id and logs one line when it completes.
// Client errors are logged at warn, server errors at error.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()

		status := c.Writer.Status()
		template := "%s %s %d %s %s"
		args := []any{c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.ClientIP()}
		switch {
		case status >= http.StatusInternalServerError:
			m.l.Errorf(ctx, template, args...)
		case status >= http.StatusBadRequest:
			m.l.Warnf(ctx, template, args...)
		default:
			m.l.Infof(ctx, template, args...)
		}
	}
}
