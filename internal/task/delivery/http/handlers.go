package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recurring-task-engine/internal/middleware"
	"recurring-task-engine/internal/task"
	"recurring-task-engine/pkg/response"
)

// Interpret godoc
// @Summary     Interpret schedule text
// @Description Previews how free text such as "every monday" or "next friday" is understood. Unrecognized text is not an error: it yields matched=false.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body interpretReq true "Text to interpret"
// @Success     200  {object} interpretResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/interpret [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Interpret(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.http.Interpret: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newInterpretResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task. A recurring task (explicit recurrence or interpreted schedule) becomes the root of a new series.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, badRequest(err))
		return
	}

	output, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newDetailResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks the task done. For a recurring task the next instance of its series is created. When the next instance could not be created the completed task is still returned alongside the error.
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already completed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Complete(ctx, middleware.GetScope(c), task.CompleteInput{TaskID: id})
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Complete: %v", err)
		if output.Completed.ID != "" {
			response.ErrorWithData(c, h.mapError(err), h.newCompleteResp(output))
			return
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// Series godoc
// @Summary     List the series of a task
// @Description Returns the root and every generated instance of the task's series ordered by recurrence index.
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} seriesResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/series [GET]
func (h *handler) Series(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Series(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Series: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSeriesResp(output))
}

// Occurrences godoc
// @Summary     Preview upcoming occurrences
// @Tags        Task
// @Produce     json
// @Param       id    path  string true  "Task ID"
// @Param       count query int    false "Number of dates (default: 5, max: 50)"
// @Success     200 {object} occurrencesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Task is not recurring"
// @Router      /api/v1/tasks/{id}/occurrences [GET]
func (h *handler) Occurrences(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processOccurrencesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Occurrences(ctx, middleware.GetScope(c), task.OccurrencesInput{TaskID: id, Count: req.Count})
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Occurrences: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOccurrencesResp(output))
}

// Calendar godoc
// @Summary     Export a task as iCalendar
// @Tags        Task
// @Produce     text/calendar
// @Param       id path string true "Task ID"
// @Success     200 {string} string "iCalendar document"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Task has no due date"
// @Router      /api/v1/tasks/{id}/calendar.ics [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportCalendar(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Calendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", output.Content)
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes one task. Other instances of its series keep their indices.
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
