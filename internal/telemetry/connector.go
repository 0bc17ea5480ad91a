package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ConnectorTelemetry holds the instruments recorded for outgoing API calls.
type ConnectorTelemetry struct {
	meter metric.Meter

	requestCounter    metric.Int64Counter
	errorCounter      metric.Int64Counter
	durationHistogram metric.Float64Histogram
}

// RequestMetrics is the telemetry data for one connector call.
type RequestMetrics struct {
	Operation  string
	Method     string
	StatusCode int
	Duration   time.Duration
	// ErrorKind is "transport", "remote", or "" on success. Kept
	// low-cardinality on purpose.
	ErrorKind string
}

// NewConnectorTelemetry creates an uninitialized ConnectorTelemetry.
func NewConnectorTelemetry() *ConnectorTelemetry {
	return &ConnectorTelemetry{}
}

// Initialize sets up the connector's instruments on the global meter
// provider.
func (t *ConnectorTelemetry) Initialize(ctx context.Context) error {
	t.meter = otel.Meter("inventory-dashboard-connector")

	var err error

	t.requestCounter, err = t.meter.Int64Counter(
		"connector_requests_total",
		metric.WithDescription("Total number of API requests issued by the connector"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create request counter: %w", err)
	}

	t.errorCounter, err = t.meter.Int64Counter(
		"connector_errors_total",
		metric.WithDescription("Total number of failed connector API requests"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create error counter: %w", err)
	}

	t.durationHistogram, err = t.meter.Float64Histogram(
		"connector_request_duration_seconds",
		metric.WithDescription("Duration of connector API requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return nil
}

// RecordRequest records one completed (or failed) connector call. A nil
// receiver or uninitialized instruments make this a no-op so the connector
// never depends on telemetry being wired.
func (t *ConnectorTelemetry) RecordRequest(ctx context.Context, m RequestMetrics) {
	if t == nil || t.requestCounter == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("operation", m.Operation),
		attribute.String("method", m.Method),
		attribute.Int("status_code", m.StatusCode),
	}

	t.requestCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	t.durationHistogram.Record(ctx, m.Duration.Seconds(), metric.WithAttributes(attrs...))

	if m.ErrorKind != "" {
		t.errorCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", m.Operation),
			attribute.String("error_kind", m.ErrorKind),
		))
		slog.Debug("Connector request failed",
			"operation", m.Operation,
			"status_code", m.StatusCode,
			"error_kind", m.ErrorKind)
	}
}
