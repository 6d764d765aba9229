package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Additional-Code/storehouse/internal/config"
	"github.com/Additional-Code/storehouse/internal/observability"
)

func serve(e *echo.Echo, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func TestRouterHealth(t *testing.T) {
	e := NewRouter(zap.NewNop())

	rec, out := serve(e, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", out["status"])
}

func TestRouterErrorsUseFlatEnvelope(t *testing.T) {
	e := NewRouter(zap.NewNop())
	e.GET("/boom", func(echo.Context) error { panic("boom") })

	rec, out := serve(e, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Not Found", out["message"])

	rec, out = serve(e, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, out["success"])
}

func TestNewEchoMountsMetrics(t *testing.T) {
	cfg := config.Config{Observability: config.Observability{
		ServiceName:     "storehouse",
		EnableMetrics:   true,
		MetricsExporter: "prometheus",
		PrometheusPath:  "/metrics",
	}}
	obs, err := observability.Build(t.Context(), cfg.Observability, zap.NewNop())
	require.NoError(t, err)

	e := NewEcho(cfg, obs, zap.NewNop())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
