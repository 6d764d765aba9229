package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Additional-Code/storehouse/internal/config"
)

func TestBuildDisabled(t *testing.T) {
	mgr, err := Build(context.Background(), config.Observability{ServiceName: "storehouse"}, nil)
	require.NoError(t, err)

	assert.False(t, mgr.TracingEnabled())
	assert.False(t, mgr.MetricsEnabled())
	assert.Nil(t, mgr.MetricsHandler())

	counter := Counter(mgr.Meter("test"), "storehouse.test.noop", "noop", zap.NewNop())
	counter.Add(context.Background(), 1)
	assert.NoError(t, mgr.Shutdown(context.Background()))
}

func TestPrometheusScrapeIncludesCounters(t *testing.T) {
	ctx := context.Background()
	mgr, err := Build(ctx, config.Observability{
		ServiceName:     "storehouse",
		EnableMetrics:   true,
		MetricsExporter: "prometheus",
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = mgr.Shutdown(context.Background()) })

	require.True(t, mgr.MetricsEnabled())
	require.NotNil(t, mgr.MetricsHandler())

	counter := Counter(mgr.Meter("github.com/Additional-Code/storehouse/test"), "storehouse.products.created", "Products created", zap.NewNop())
	counter.Add(ctx, 2)

	rec := httptest.NewRecorder()
	mgr.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "storehouse_products_created")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestBuildRejectsOTLPWithoutEndpoint(t *testing.T) {
	_, err := Build(context.Background(), config.Observability{
		EnableTracing: true,
		TraceExporter: "otlp",
	}, zap.NewNop())
	assert.Error(t, err)
}

func TestUnknownExportersAreIgnored(t *testing.T) {
	mgr, err := Build(context.Background(), config.Observability{
		EnableTracing:   true,
		TraceExporter:   "jaeger",
		EnableMetrics:   true,
		MetricsExporter: "statsd",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, mgr.TracingEnabled())
	assert.False(t, mgr.MetricsEnabled())
}
