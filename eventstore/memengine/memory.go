package memengine

import (
	"context"
	"sync"
	"time"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
)

const (
	logMsgQueryCompleted      = "query completed"
	logMsgEventsAppended      = "events appended"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logAttrEventCount         = "event_count"
	logAttrDurationMS         = "duration_ms"
	logAttrMaxSequence        = "max_sequence"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
)

type storedEvent struct {
	sequenceNumber eventstore.MaxSequenceNumberUint
	event          eventstore.StorableEvent
}

// EventStore is an in-memory, append-only event log that is safe for concurrent use.
type EventStore struct {
	mu               sync.RWMutex
	events           []storedEvent
	logger           eventstore.Logger
	contextualLogger eventstore.ContextualLogger
	metricsCollector eventstore.MetricsCollector
}

// NewEventStore creates an empty EventStore.
func NewEventStore(options ...Option) (*EventStore, error) {
	es := &EventStore{
		events: make([]storedEvent, 0),
	}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Query returns the events matching the filter in append order, plus the highest sequence number
// among them (0 if none match).
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	start := time.Now()

	es.mu.RLock()
	eventStream, maxSequenceNumber := es.collect(filter)
	es.mu.RUnlock()

	duration := time.Since(start)
	es.recordDuration(ctx, metricQueryDuration, duration, operationQuery, statusSuccess)
	es.logDebug(
		ctx,
		logMsgQueryCompleted,
		logAttrEventCount, len(eventStream),
		logAttrMaxSequence, maxSequenceNumber,
		logAttrDurationMS, toMilliseconds(duration),
	)

	return eventStream, maxSequenceNumber, nil
}

// Append appends one or more events atomically, provided that no event matching the filter was
// appended after expectedMaxSequenceNumber. Otherwise it returns eventstore.ErrConcurrencyConflict.
//
// Use the same filter as for the Query that the decision was based on.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	storableEvents ...eventstore.StorableEvent,
) error {

	if len(storableEvents) == 0 {
		return eventstore.ErrEmptyEventsSupplied
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	allEvents := append(eventstore.StorableEvents(nil), storableEvents...)
	start := time.Now()

	es.mu.Lock()

	_, actualMaxSequenceNumber := es.collect(filter)
	if actualMaxSequenceNumber != expectedMaxSequenceNumber {
		es.mu.Unlock()

		es.recordDuration(ctx, metricAppendDuration, time.Since(start), operationAppend, statusConflict)
		es.incrementCounter(ctx, metricConcurrencyConflicts, operationAppend)
		es.logInfo(
			ctx,
			logMsgConcurrencyConflict,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
			logAttrActualSequence, actualMaxSequenceNumber,
		)

		return eventstore.ErrConcurrencyConflict
	}

	next := eventstore.MaxSequenceNumberUint(len(es.events))
	for _, e := range allEvents {
		next++
		es.events = append(es.events, storedEvent{sequenceNumber: next, event: e})
	}

	es.mu.Unlock()

	duration := time.Since(start)
	es.recordDuration(ctx, metricAppendDuration, duration, operationAppend, statusSuccess)
	es.incrementCounter(ctx, metricEventsAppended, operationAppend)
	es.logDebug(
		ctx,
		logMsgEventsAppended,
		logAttrEventCount, len(allEvents),
		logAttrMaxSequence, next,
		logAttrDurationMS, toMilliseconds(duration),
	)

	return nil
}

// Len returns the number of events in the log.
func (es *EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return len(es.events)
}

// collect must be called with at least a read lock held.
func (es *EventStore) collect(filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint) {
	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for _, stored := range es.events {
		if !matches(filter, stored) {
			continue
		}

		eventStream = append(eventStream, stored.event)
		maxSequenceNumber = stored.sequenceNumber
	}

	return eventStream, maxSequenceNumber
}
