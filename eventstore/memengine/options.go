package memengine

import (
	"errors"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
)

var ErrNilLogger = errors.New("logger must not be nil")
var ErrNilMetricsCollector = errors.New("metrics collector must not be nil")

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithLogger sets the logger for the EventStore.
//
// Debug level: every query and append with its duration
// Info level: concurrency conflicts.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		if logger == nil {
			return ErrNilLogger
		}

		es.logger = logger

		return nil
	}
}

// WithContextualLogger sets a context-aware logger. It takes precedence over WithLogger.
func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(es *EventStore) error {
		if logger == nil {
			return ErrNilLogger
		}

		es.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets the collector that receives query/append durations and conflict counts.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		es.metricsCollector = collector

		return nil
	}
}
