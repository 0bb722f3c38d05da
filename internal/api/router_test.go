package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	config "github.com/skinhelper/catalog/internal/config/server"
	"github.com/skinhelper/catalog/pkg/db/store"
	"github.com/skinhelper/catalog/pkg/log"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, store.CatalogStore) {
	t.Helper()

	st, err := store.NewSQLiteStore(store.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, st.Connect(context.Background()))
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { st.Close() })

	logger := log.NewLoggerService("test", config.LogServerConfig{
		Level:      "error",
		NoTerminal: true,
	})

	return NewRouter(st, logger), st
}

func perform(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	decodeBody(t, recorder, &body)
	require.Equal(t, "ok", body["Status"])
}

func TestRequestIDHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodGet, "/health", nil)
	require.NotEmpty(t, recorder.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	echo := httptest.NewRecorder()
	router.ServeHTTP(echo, req)
	require.Equal(t, "abc-123", echo.Header().Get("X-Request-Id"))
}
