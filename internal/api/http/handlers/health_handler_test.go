package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/observability"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func readyResponse(t *testing.T, deps map[string]Pinger) (int, string) {
	t.Helper()
	h := NewHealthHandler("helpdesk", "test", observability.NewMetrics(), deps)
	app := fiber.New()
	app.Get("/ready", h.Ready)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestReady_AllHealthy(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })

	status, body := readyResponse(t, map[string]Pinger{"record_store": ok, "session_store": ok})

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ready","checks":{"record_store":"ok","session_store":"ok"}}`, body)
}

func TestReady_DependencyDown(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	status, body := readyResponse(t, map[string]Pinger{"record_store": ok, "session_store": down})

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.JSONEq(t, `{"status":"unavailable","checks":{"record_store":"ok","session_store":"connection refused"}}`, body)
}
