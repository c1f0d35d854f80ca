package httpserver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solosync/internal/middleware"
	"solosync/internal/realtime"
	"solosync/internal/workflow/repository/memory"
	"solosync/pkg/datemath"
	pkgLog "solosync/pkg/log"
)

type stubBot struct{}

func (stubBot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error { return nil }
func (stubBot) SendMessage(ctx context.Context, chatID int64, text string) error      { return nil }

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	dm.SetClock(func() time.Time { return time.Date(2024, 5, 1, 15, 30, 45, 0, time.UTC) })

	cfg.Logger = pkgLog.NewNop()
	cfg.Port = 8080
	cfg.Mode = gin.TestMode
	cfg.WorkflowRepo = memory.New()
	cfg.DateMath = dm
	cfg.Hub = realtime.New(pkgLog.NewNop())

	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)
	return srv
}

func serve(h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, Config{Port: 8080, Mode: gin.TestMode})
	assert.Error(t, err)

	_, err = New(pkgLog.NewNop(), Config{Logger: pkgLog.NewNop(), Port: 8080, Mode: gin.TestMode})
	assert.Error(t, err, "missing repository must be rejected")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(srv.Handler(), http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
		assert.Contains(t, w.Body.String(), `"store":"memory"`)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	}
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t, Config{})
	h := srv.Handler()

	w := serve(h, http.MethodPost, "/analyze", `{"text":"need a logo by tomorrow"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"client":"New Client","task":"Logo Design","budget":0,"deadline":"2024-05-02T15:30:45"}`, w.Body.String())

	w = serve(h, http.MethodPost, "/api/v1/analyze", `{"text":""}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(h, http.MethodPost, "/api/v1/parse-request", `{"rawText":"Acme needs an app for $2,000"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = serve(h, http.MethodGet, "/api/v1/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pending":2000`)

	w = serve(h, http.MethodPost, "/webhook/telegram", `{}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "telegram route is off without a bot")
}

func TestTelegramRouteEnabled(t *testing.T) {
	srv := newTestServer(t, Config{TelegramBot: stubBot{}, TelegramSecret: "s"})
	w := serve(srv.Handler(), http.MethodPost, "/webhook/telegram", `{"update_id":1}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, Config{AllowedOrigins: []string{"https://app.example.com"}})
	h := srv.corsHandler()

	w := serve(h, http.MethodOptions, "/api/v1/projects", "", map[string]string{
		"Origin":                        "https://app.example.com",
		"Access-Control-Request-Method": http.MethodGet,
	})
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(h, http.MethodGet, "/health", "", map[string]string{"Origin": "https://evil.example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRunShutsDown(t *testing.T) {
	srv := newTestServer(t, Config{})
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
