package http

import (
	"github.com/gin-gonic/gin"
)

// processInterpretReq binds and validates the interpret request body.
func (h *handler) processInterpretReq(c *gin.Context) (interpretReq, error) {
	var req interpretReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.http.processInterpretReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

// processCreateReq binds the create task body and converts it to use-case input.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.http.processCreateReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processOccurrencesReq(c *gin.Context) (occurrencesReq, error) {
	var req occurrencesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.http.processOccurrencesReq: %v", err)
		return req, errWrongQuery
	}
	return req, nil
}

func (h *handler) processID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
