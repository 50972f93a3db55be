package http

import (
	"github.com/gin-gonic/gin"

	"atrova/internal/middleware"
)

// RegisterRoutes maps the event endpoints under rg (normally /api).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events", mw.Auth())
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/:id", h.Detail)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
