package oteladapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/AntonStoeckl/library-loans-go/eventstore/memengine"
	"github.com/AntonStoeckl/library-loans-go/eventstore/oteladapters"
	"github.com/AntonStoeckl/library-loans-go/library/core"
	"github.com/AntonStoeckl/library-loans-go/library/loanmanager"
	"github.com/AntonStoeckl/library-loans-go/testutil/helper"
)

func Test_LoanManager_WithOpenTelemetryAdapters(t *testing.T) {
	// arrange
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	metrics := oteladapters.NewMetricsCollector(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test"))
	recorder := tracetest.NewSpanRecorder()
	tracing := oteladapters.NewTracingCollector(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)).Tracer("test"))
	logger := oteladapters.NewSlogBridgeLogger("test")

	store, err := memengine.NewEventStore(memengine.WithMetrics(metrics), memengine.WithContextualLogger(logger))
	require.NoError(t, err)
	manager, err := loanmanager.New(
		store,
		loanmanager.WithClock(helper.NewFixedClock(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC))),
		loanmanager.WithMetrics(metrics),
		loanmanager.WithTracing(tracing),
		loanmanager.WithContextualLogger(logger),
	)
	require.NoError(t, err)

	book := helper.FixtureBook()
	require.NoError(t, manager.AddItem(ctx, book))
	member, err := manager.RegisterMember(ctx, "Alice", core.Student)
	require.NoError(t, err)

	// act
	_, ok, err := manager.LoanItem(ctx, book, member)

	// assert
	require.NoError(t, err)
	assert.True(t, ok)

	names := make([]string, 0)
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{"loanmanager.add_item", "loanmanager.register_member", "loanmanager.loan_item"}, names)

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &resourceMetrics))
	recorded := make(map[string]bool)
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, metric := range scopeMetrics.Metrics {
			recorded[metric.Name] = true
		}
	}
	assert.True(t, recorded["loanmanager_operation_duration_seconds"])
	assert.True(t, recorded["loanmanager_operations_total"])
	assert.True(t, recorded["eventstore_append_duration_seconds"])
	assert.True(t, recorded["eventstore_query_duration_seconds"])
}
