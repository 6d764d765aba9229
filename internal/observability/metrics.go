package observability

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// Counter creates an Int64Counter on meter, falling back to a no-op counter so
// callers never need nil checks.
func Counter(meter metric.Meter, name, description string, logger *zap.Logger) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit("{record}"))
	if err != nil {
		if logger != nil {
			logger.Warn("metric instrument unavailable", zap.String("metric", name), zap.Error(err))
		}
		return noop.Int64Counter{}
	}
	return counter
}
