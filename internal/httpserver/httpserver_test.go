package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbsqlite "atrova/config/sqlite"
	"atrova/internal/extraction"
	"atrova/pkg/datemath"
	"atrova/pkg/log"
)

type stubExtractor struct {
	extraction.UseCase
}

type stubSender struct{}

func (stubSender) SendMessage(int64, string) error                 { return nil }
func (stubSender) SendMessageWithMode(int64, string, string) error { return nil }

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	db, err := dbsqlite.Connect(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { dbsqlite.Disconnect(db) })
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	cfg.Logger = log.NewNop()
	cfg.Port = 8080
	cfg.Mode = "test"
	cfg.DB = db
	cfg.Extractor = stubExtractor{}
	cfg.Parser = parser

	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers(context.Background()))
	return srv
}

func do(srv *HTTPServer, method, path, owner, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if owner != "" {
		req.Header.Set("X-Owner-ID", owner)
	}
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNewValidates(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test", Port: 8080})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := do(srv, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
	}
	assert.NotEmpty(t, do(srv, http.MethodGet, "/health", "", "").Header().Get("X-Request-ID"))
}

func TestDomainRoutesRegistered(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := do(srv, http.MethodPost, "/api/tasks", "alice", `{"title":"Buy milk"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(srv, http.MethodGet, "/api/tasks", "alice", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Buy milk")

	w = do(srv, http.MethodGet, "/api/events", "alice", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(srv, http.MethodGet, "/api/tasks", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(srv, http.MethodPost, "/webhook/telegram", "", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTelegramWebhookRegistered(t *testing.T) {
	srv := newTestServer(t, Config{TelegramSender: stubSender{}})

	w := do(srv, http.MethodPost, "/webhook/telegram", "", `{"update_id":1}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTelegramWebhookSecret(t *testing.T) {
	srv := newTestServer(t, Config{TelegramSender: stubSender{}, TelegramSecret: "s3cret"})

	w := do(srv, http.MethodPost, "/webhook/telegram", "", `{"update_id":1}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(`{"update_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "s3cret")
	w = httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
