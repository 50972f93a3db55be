package http

import (
	"github.com/gin-gonic/gin"

	"atrova/internal/middleware"
)

// RegisterRoutes maps the task endpoints under rg (normally /api).
// Extraction calls a hosted model, so it is rate limited per owner.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.POST("/extract", mw.RateLimit(), h.Extract)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}

	// Legacy single-resource create.
	rg.POST("/task", mw.Auth(), h.Create)
}
