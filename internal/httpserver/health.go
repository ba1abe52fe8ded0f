package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recurring-task-engine/pkg/response"
)

const (
	ServiceName    = "recurring-task-engine"
	ServiceVersion = "1.0.0"
)

type statusResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func newStatus(status string) statusResp {
	return statusResp{Status: status, Service: ServiceName, Version: ServiceVersion}
}

// healthCheck
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newStatus("healthy"))
}

// readyCheck reports ready once storage answers.
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp
// @Failure 503 {object} response.Resp "Storage unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "not ready",
				Data:      newStatus("unavailable"),
			})
			return
		}
	}
	response.OK(c, newStatus("ready"))
}

// liveCheck
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newStatus("alive"))
}
