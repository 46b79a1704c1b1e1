package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/library-loans-go/eventstore/oteladapters"
)

const instrumentationName = "github.com/AntonStoeckl/library-loans-go/cmd/librarydemo"

// telemetry keeps spans and metrics in process. Metrics are read on demand with a ManualReader.
type telemetry struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	reader         *sdkmetric.ManualReader
	metrics        *oteladapters.MetricsCollector
	tracing        *oteladapters.TracingCollector
}

func newTelemetry() *telemetry {
	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	tracerProvider := sdktrace.NewTracerProvider()

	return &telemetry{
		tracerProvider: tracerProvider,
		meterProvider:  meterProvider,
		reader:         reader,
		metrics:        oteladapters.NewMetricsCollector(meterProvider.Meter(instrumentationName)),
		tracing:        oteladapters.NewTracingCollector(tracerProvider.Tracer(instrumentationName)),
	}
}

func (t *telemetry) shutdown(ctx context.Context) error {
	return errors.Join(t.tracerProvider.Shutdown(ctx), t.meterProvider.Shutdown(ctx))
}

// printSummary writes every counter data point as "metric{label=value,...} count", sorted.
func (t *telemetry) printSummary(ctx context.Context, out io.Writer) error {
	var resourceMetrics metricdata.ResourceMetrics
	if err := t.reader.Collect(ctx, &resourceMetrics); err != nil {
		return err
	}

	var lines []string

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, metric := range scopeMetrics.Metrics {
			sum, ok := metric.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}

			for _, dataPoint := range sum.DataPoints {
				labels := make([]string, 0, dataPoint.Attributes.Len())
				for _, kv := range dataPoint.Attributes.ToSlice() {
					labels = append(labels, string(kv.Key)+"="+kv.Value.Emit())
				}

				lines = append(lines, fmt.Sprintf("%s{%s} %d", metric.Name, strings.Join(labels, ","), dataPoint.Value))
			}
		}
	}

	sort.Strings(lines)

	fmt.Fprintln(out, "\n--- Metrics ---")
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}

	return nil
}
