package loanmanager

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
	"github.com/AntonStoeckl/library-loans-go/library/core"
	"github.com/AntonStoeckl/library-loans-go/library/shell"
)

// ErrProjectionFailed is returned when an event from the store cannot be folded into the read model.
var ErrProjectionFailed = errors.New("projection failed")

type decideFunc func(history core.DomainEvents) core.DecisionResult

// afterApplyFunc runs under the write lock once the appended event is folded into the read model.
// It returns additional notifications.
type afterApplyFunc func(ctx context.Context, appended core.DomainEvent) core.DomainEvents

// execute runs one command through query, decide, append and fold.
//
// The write lock is held for the whole cycle. The cycle is retried when another writer on the same
// store appended to the command's stream in between. Observers are notified after the lock is released.
func (m *Manager) execute(
	ctx context.Context,
	operation string,
	filter eventstore.Filter,
	decide decideFunc,
	afterApply afterApplyFunc,
) (core.DecisionResult, error) {

	start := time.Now()
	ctx, span := m.startSpan(ctx, operation)

	var notifications core.DomainEvents

	m.mu.Lock()

	result, retryMetrics, err := m.decideAndAppend(ctx, operation, filter, decide)

	if err == nil && result.HasEventToAppend() {
		_, err = m.catchUp(ctx)
	}

	if err == nil && result.Event != nil {
		notifications = append(notifications, result.Event)

		if result.HasEventToAppend() && afterApply != nil {
			notifications = append(notifications, afterApply(ctx, result.Event)...)
		}
	}

	m.mu.Unlock()

	m.notify(ctx, notifications)

	var status string

	switch {
	case err != nil:
		status = statusError
		m.logError(ctx, logMsgOperationFailed,
			logAttrOperation, operation, logAttrAttempts, retryMetrics.Attempts, logAttrError, err.Error())

	case result.HasError() != nil:
		status = statusRejected
		err = result.HasError()
		m.logWarn(ctx, logMsgOperationRejected, logAttrOperation, operation, logAttrError, err.Error())

	case result.IsIdempotent():
		status = statusIdempotent

	default:
		status = statusSuccess
	}

	duration := time.Since(start)

	m.logInfo(ctx, logMsgOperationCompleted,
		logAttrOperation, operation,
		logAttrStatus, status,
		logAttrAttempts, retryMetrics.Attempts,
		logAttrDurationMS, toMilliseconds(duration),
	)
	m.recordOperation(ctx, operation, status, duration)
	m.finishSpan(span, status, duration, err)

	return result, err
}

func (m *Manager) decideAndAppend(
	ctx context.Context,
	operation string,
	filter eventstore.Filter,
	decide decideFunc,
) (core.DecisionResult, shell.RetryMetrics, error) {

	var result core.DecisionResult

	commandID := uuid.New()

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(ctx context.Context) error {
		if _, err := m.catchUp(ctx); err != nil {
			return err
		}

		storableEvents, maxSequenceNumber, err := m.store.Query(ctx, filter)
		if err != nil {
			return err
		}

		history, err := shell.DomainEventsFrom(storableEvents)
		if err != nil {
			return err
		}

		result = decide(history)

		if !result.HasEventToAppend() {
			return nil
		}

		storableEvent, err := shell.StorableEventFrom(result.Event, shell.BuildCommandMetadata(commandID, operation))
		if err != nil {
			return err
		}

		return m.store.Append(ctx, filter, maxSequenceNumber, storableEvent)
	}, m.retryOptionsFor(operation)...)

	return result, retryMetrics, err
}

// catchUp folds the events appended since the last call, including those of other writers.
// The batch is applied all or nothing. The caller must hold the write lock.
func (m *Manager) catchUp(ctx context.Context) (int, error) {
	filter := eventstore.BuildEventFilter().
		WithSequenceNumberHigherThan(m.model.applied).
		MatchingAnyEvent()

	storableEvents, maxSequenceNumber, err := m.store.Query(ctx, filter)
	if err != nil {
		return 0, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return 0, err
	}

	if len(history) == 0 {
		return 0, nil
	}

	// A batch is folded into a copy so that a failing event leaves the model at the last good state.
	next := m.model.clone()

	for _, event := range history {
		if err = next.apply(event); err != nil {
			return 0, errors.Join(ErrProjectionFailed, err)
		}
	}

	next.applied = max(next.applied, maxSequenceNumber)
	m.model = next

	return len(history), nil
}

func (m *Manager) retryOptionsFor(operation string) []shell.RetryOption {
	options := append([]shell.RetryOption(nil), m.retryOptions...)

	if m.metricsCollector != nil {
		options = append(options, shell.WithRetryMetrics(m.metricsCollector, operation))
	}

	return options
}
