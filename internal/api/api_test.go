package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronosync/chronosync/internal/api"
	"github.com/chronosync/chronosync/internal/factory"
	"github.com/chronosync/chronosync/internal/services/auth"
	"github.com/chronosync/chronosync/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
	auth    *auth.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		AuthService: app.AuthService,
		GameSocket:  app.GameSocket,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
		auth:    app.AuthService,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestRoot(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ChronoSync API online", decodeBody(t, rr)["message"])
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decodeBody(t, rr)["status"])
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "s3cret",
	})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Player registered successfully", decodeBody(t, rr)["message"])

	cred, err := ts.storage.GetCredential(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", cred.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Username already exists", decodeBody(t, rr)["detail"])
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/login", map[string]string{
		"username": "alice",
		"password": "s3cret",
	})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Login successful", decodeBody(t, rr)["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rr)["detail"])
}

func TestLoginUnknownUser(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/login", map[string]string{
		"username": "ghost",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rr)["detail"])
}

func TestWebsocketUpgradeThroughRouter(t *testing.T) {
	ts := newTestServer(t)

	// A plain GET without upgrade headers is rejected by the socket endpoint
	rr := ts.request(http.MethodGet, "/ws/game", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
