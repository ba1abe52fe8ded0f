package http

import (
	"github.com/gin-gonic/gin"

	"recurring-task-engine/internal/task"
	"recurring-task-engine/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Interpret(c *gin.Context)
	Create(c *gin.Context)
	Detail(c *gin.Context)
	Complete(c *gin.Context)
	Series(c *gin.Context)
	Occurrences(c *gin.Context)
	Calendar(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	registerValidators()
	return &handler{
		l:  l,
		uc: uc,
	}
}
