package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"recurring-task-engine/internal/middleware"
	"recurring-task-engine/pkg/log"
)

func newRouter(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		sc := middleware.GetScope(c)
		c.String(http.StatusOK, sc.UserID)
	})
	r.GET("/x", chain...)
	return r
}

func do(r http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{APIKey: "secret"})
	r := newRouter(mw, mw.Auth())

	tests := []struct {
		name     string
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{
			name:     "missing key",
			headers:  map[string]string{middleware.HeaderUserID: "alice"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong key",
			headers:  map[string]string{middleware.HeaderAPIKey: "nope", middleware.HeaderUserID: "alice"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing user",
			headers:  map[string]string{middleware.HeaderAPIKey: "secret"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "valid",
			headers:  map[string]string{middleware.HeaderAPIKey: "secret", middleware.HeaderUserID: "alice"},
			wantCode: http.StatusOK,
			wantBody: "alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.headers)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestAuthWithoutAPIKey(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.Auth())

	if w := do(r, map[string]string{middleware.HeaderUserID: "bob"}); w.Code != http.StatusOK {
		t.Errorf("expected 200 when no key is configured, got %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6.
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 60})
	r := newRouter(mw, mw.RateLimit())

	headers := map[string]string{middleware.HeaderUserID: "alice"}
	for i := 0; i < 6; i++ {
		if w := do(r, headers); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
	if w := do(r, headers); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", w.Code)
	}
	if w := do(r, map[string]string{middleware.HeaderUserID: "bob"}); w.Code != http.StatusOK {
		t.Errorf("other callers keep their own bucket, got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.RateLimit())
	for i := 0; i < 20; i++ {
		if w := do(r, nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestGetScopeWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())

	if sc := middleware.GetScope(c); sc.UserID != "" {
		t.Errorf("expected zero scope, got %+v", sc)
	}
}
