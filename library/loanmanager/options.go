package loanmanager

import (
	"errors"
	"time"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
	"github.com/AntonStoeckl/library-loans-go/library/core"
	"github.com/AntonStoeckl/library-loans-go/library/shell"
)

var (
	ErrNilEventStore       = errors.New("event store must not be nil")
	ErrNilClock            = errors.New("clock must not be nil")
	ErrNilIDGenerator      = errors.New("id generator must not be nil")
	ErrNilObserver         = errors.New("observer must not be nil")
	ErrNilLogger           = errors.New("logger must not be nil")
	ErrNilMetricsCollector = errors.New("metrics collector must not be nil")
	ErrNilTracingCollector = errors.New("tracing collector must not be nil")
)

// Option configures a Manager.
type Option func(*Manager) error

// WithClock sets the source of "today" for loans, returns and overdue views. Default: core.SystemClock.
func WithClock(clock core.Clock) Option {
	return func(m *Manager) error {
		if clock == nil {
			return ErrNilClock
		}

		m.clock = clock

		return nil
	}
}

// WithIDGenerator sets the generator for loan and member ids. Default: core.UUIDGenerator.
func WithIDGenerator(ids core.IDGenerator) Option {
	return func(m *Manager) error {
		if ids == nil {
			return ErrNilIDGenerator
		}

		m.ids = ids

		return nil
	}
}

// WithLoanPeriod sets the loan period. It is truncated to whole days and must be at least one day.
func WithLoanPeriod(period time.Duration) Option {
	return func(m *Manager) error {
		days := int(period / (24 * time.Hour))
		if days < 1 {
			return core.ErrInvalidLoanPeriod
		}

		m.loanPeriodDays = days

		return nil
	}
}

// WithFinePolicy sets the daily fine rates. Default: core.DefaultFinePolicy().
func WithFinePolicy(policy core.FinePolicy) Option {
	return func(m *Manager) error {
		m.finePolicy = policy
		return nil
	}
}

// WithObserver adds an observer. It can be given more than once.
func WithObserver(observer Observer) Option {
	return func(m *Manager) error {
		if observer == nil {
			return ErrNilObserver
		}

		m.observers = append(m.observers, observer)

		return nil
	}
}

// WithLogger sets the logger.
//
// Info level: every operation with its outcome and duration
// Warn level: rejected operations.
func WithLogger(logger eventstore.Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			return ErrNilLogger
		}

		m.logger = logger

		return nil
	}
}

// WithContextualLogger sets a context-aware logger. It takes precedence over WithLogger.
func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(m *Manager) error {
		if logger == nil {
			return ErrNilLogger
		}

		m.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets the collector for operation durations, outcomes, fines and retries.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(m *Manager) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		m.metricsCollector = collector

		return nil
	}
}

// WithTracing wraps every mutation in a span.
func WithTracing(collector eventstore.TracingCollector) Option {
	return func(m *Manager) error {
		if collector == nil {
			return ErrNilTracingCollector
		}

		m.tracingCollector = collector

		return nil
	}
}

// WithRetryOptions configures the retry on concurrency conflicts.
func WithRetryOptions(options ...shell.RetryOption) Option {
	return func(m *Manager) error {
		m.retryOptions = options
		return nil
	}
}
