package http

import (
	"github.com/gin-gonic/gin"

	"recurring-task-engine/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All task routes require an authenticated caller.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("/interpret", h.Interpret)
		tasks.POST("", h.Create)
		tasks.GET("/:id", h.Detail)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/complete", h.Complete)
		tasks.GET("/:id/series", h.Series)
		tasks.GET("/:id/occurrences", h.Occurrences)
		tasks.GET("/:id/calendar.ics", h.Calendar)
	}
}
