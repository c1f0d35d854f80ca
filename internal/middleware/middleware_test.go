package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"solosync/internal/middleware"
	pkgLog "solosync/pkg/log"
)

func newEngine(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, pkgLog.RequestID(c.Request.Context()))
	})
	return r
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request.
	r := newEngine(middleware.New(pkgLog.NewNop(), middleware.Config{RateLimitPerMin: 10}))

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", second.Code)
	}

	other := httptest.NewRequest(http.MethodGet, "/ping", nil)
	other.RemoteAddr = "10.0.0.2:5555"
	third := httptest.NewRecorder()
	r.ServeHTTP(third, other)
	if third.Code != http.StatusOK {
		t.Fatalf("other client: expected 200, got %d", third.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine(middleware.New(pkgLog.NewNop(), middleware.Config{}))

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(middleware.New(pkgLog.NewNop(), middleware.Config{}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(middleware.HeaderRequestID)
		if id == "" {
			t.Fatal("expected generated request id header")
		}
		if w.Body.String() != id {
			t.Errorf("context id %q does not match header %q", w.Body.String(), id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.HeaderRequestID); got != "abc-123" {
			t.Errorf("expected propagated id, got %q", got)
		}
	})
}
