package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.POST("/register", h.Register)
	r.POST("/search", h.Search)

	items := r.Group("/inventory")
	{
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
		items.GET("/:id/photo", h.GetPhoto)
		items.PUT("/:id/photo", h.UpdatePhoto)
	}
}
