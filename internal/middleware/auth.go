package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/pkg/response"
)

const (
	HeaderAPIKey   = "X-API-Key"
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"

	scopeKey = "scope"
)

// Auth checks the API key and puts the caller's scope on the request.
// X-User-ID is required; it is who tasks are assigned to by default.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey != "" {
			key := c.GetHeader(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
				m.l.Warnf(c.Request.Context(), "middleware.Auth: invalid api key from %s", c.ClientIP())
				response.Unauthorized(c)
				return
			}
		}

		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			return
		}

		sc := model.Scope{
			UserID:   userID,
			Username: strings.TrimSpace(c.GetHeader(HeaderUsername)),
		}
		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}

// GetScope returns the scope set by Auth, or a zero Scope.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	return sc
}
