package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLog logs one line per request at info level, or warn for 4xx/5xx.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		if status >= 400 {
			m.l.Warnf(ctx, "%s %s -> %d (%s) errors=%s", c.Request.Method, c.FullPath(), status, latency, c.Errors.String())
			return
		}
		m.l.Infof(ctx, "%s %s -> %d (%s)", c.Request.Method, c.FullPath(), status, latency)
	}
}
