package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(original) })
	return &buf
}

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	logs := captureLogs(t)
	e := echo.New()
	setupErrorHandling(e)
	e.POST("/login", func(c echo.Context) error {
		return errors.New("identity backend exploded")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	out := logs.String()
	assert.Contains(t, out, "Internal Server Error (Unhandled)")
	assert.Contains(t, out, `error="identity backend exploded"`)
	assert.Contains(t, out, "path=/login")
	assert.Contains(t, out, "stack_trace=")
	assert.Contains(t, out, "runtime/debug/stack.go")
	assert.Contains(t, out, "internal/server/server_test.go", "trace reaches the calling test")
}

func TestHTTPErrorHandler_ClientErrorsAreNotLogged(t *testing.T) {
	logs := captureLogs(t)
	e := echo.New()
	setupErrorHandling(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, logs.String(), "Internal Server Error (Unhandled)")
}
