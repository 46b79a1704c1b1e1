// Package oteladapters implements the eventstore observability interfaces with OpenTelemetry.
//
// The same adapters serve the event store and the loan manager, which both accept an
// eventstore.ContextualLogger, an eventstore.MetricsCollector and an eventstore.TracingCollector.
package oteladapters
