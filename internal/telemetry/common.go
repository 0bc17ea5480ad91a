package telemetry

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Telemetry owns the metric provider and, for the scraper exporter, the HTTP
// server that exposes /metrics.
type Telemetry struct {
	server   *http.Server
	Provider *metric.MeterProvider
}

var once sync.Once

// Setup initializes the global meter provider according to the configured
// exporter. "scraper" serves a Prometheus page on addr; "grpc" pushes OTLP
// metrics to the endpoint named by OTEL_EXPORTER_OTLP_METRICS_ENDPOINT
// (localhost:4317 by default); anything else leaves the no-op provider in
// place so instrument calls cost nothing.
func Setup(ctx context.Context, exporter, addr string) *Telemetry {
	t := &Telemetry{}

	once.Do(func() {
		switch exporter {
		case "scraper":
			slog.Info("Starting metrics with scraper exporter", "addr", addr)
			t.initScrapeMetrics(addr)
		case "grpc":
			slog.Info("Starting metrics with grpc exporter")
			t.initGRPCMetrics(ctx)
		default:
			slog.Debug("Metrics export disabled")
		}
	})

	return t
}

// Close flushes pending metrics and stops the scrape server if one runs.
func (t *Telemetry) Close(ctx context.Context) {
	if t.Provider != nil {
		_ = t.Provider.ForceFlush(ctx)
	}
	if t.server != nil {
		_ = t.server.Shutdown(ctx)
		slog.Info("Shutting down metrics server")
	}
}

func (t *Telemetry) initGRPCMetrics(ctx context.Context) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		slog.Error("Creating GRPC exporter", "error", err)
		return
	}

	t.Provider = metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(exporter)))
	otel.SetMeterProvider(t.Provider)
}

func (t *Telemetry) initScrapeMetrics(addr string) {
	// The exporter implements prometheus.Collector and embeds a Reader, so
	// it plugs straight into the provider.
	exporter, err := prometheus.New()
	if err != nil {
		slog.Error("Creating Prometheus scrape exporter", "error", err)
		return
	}

	t.Provider = metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(t.Provider)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	t.server = &http.Server{Addr: addr, Handler: mux}

	go func() {
		slog.Info("Serving metrics", "addr", addr+"/metrics")
		if err := t.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Metrics server exited", "error", err)
		}
	}()
}
