package middleware

import (
	"github.com/gin-gonic/gin"

	"inventory-service/pkg/response"
)

// Recovery turns a panicking handler into a 500 and logs the panic value.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic: %v", err)
		response.InternalError(c)
		c.Abort()
	})
}
