package memengine_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
	"github.com/AntonStoeckl/library-loans-go/eventstore/memengine"
	"github.com/AntonStoeckl/library-loans-go/testutil/helper"
)

func Test_Query_ReturnsMatchingEventsWithMaxSequenceNumber(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t)
	givenAppended(t, es, lent("9780321356680", "m-1"))
	givenAppended(t, es, lent("9781098100131", "m-2"))
	givenAppended(t, es, returned("9780321356680", "m-1"))

	filter := filterForItem("9780321356680")

	// act
	events, maxSeq, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "ItemLentToMember", events[0].EventType)
	assert.Equal(t, "ItemReturnedByMember", events[1].EventType)
	assert.Equal(t, uint(3), maxSeq)
}

func Test_Query_NothingMatches_ReturnsZeroSequenceNumber(t *testing.T) {
	// arrange
	es := givenEventStore(t)
	givenAppended(t, es, lent("9781098100131", "m-2"))

	// act
	events, maxSeq, err := es.Query(context.Background(), filterForItem("9780321356680"))

	// assert
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, uint(0), maxSeq)
}

func Test_Query_PredicatesAreMatchedByAnyOrAll(t *testing.T) {
	// arrange
	es := givenEventStore(t)
	givenAppended(t, es, lent("9780321356680", "m-1"))
	givenAppended(t, es, lent("9781098100131", "m-2"))

	anyFilter := eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("ItemID", "9780321356680"), eventstore.P("MemberID", "m-2")).
		Finalize()

	allFilter := eventstore.BuildEventFilter().
		Matching().
		AllPredicatesOf(eventstore.P("ItemID", "9780321356680"), eventstore.P("MemberID", "m-2")).
		Finalize()

	// act
	anyEvents, _, anyErr := es.Query(context.Background(), anyFilter)
	allEvents, _, allErr := es.Query(context.Background(), allFilter)

	// assert
	require.NoError(t, anyErr)
	require.NoError(t, allErr)
	assert.Len(t, anyEvents, 2)
	assert.Empty(t, allEvents)
}

func Test_Query_WithSequenceNumberHigherThan(t *testing.T) {
	// arrange
	es := givenEventStore(t)
	givenAppended(t, es, lent("9780321356680", "m-1"))
	givenAppended(t, es, returned("9780321356680", "m-1"))
	givenAppended(t, es, lent("9780321356680", "m-2"))

	filter := eventstore.BuildEventFilter().WithSequenceNumberHigherThan(1).MatchingAnyEvent()

	// act
	events, maxSeq, err := es.Query(context.Background(), filter)

	// assert
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, uint(3), maxSeq)
}

func Test_Query_CanceledContext(t *testing.T) {
	// arrange
	es := givenEventStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, _, err := es.Query(ctx, eventstore.BuildEventFilter().MatchingAnyEvent())

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Append_ConcurrencyConflict_WhenStreamMovedOn(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t)
	filter := filterForItem("9780321356680")
	_, maxSeqBefore, err := es.Query(ctx, filter)
	require.NoError(t, err)

	givenAppended(t, es, lent("9780321356680", "m-1"))

	// act
	err = es.Append(ctx, filter, maxSeqBefore, lent("9780321356680", "m-2"))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.Equal(t, 1, es.Len())
}

func Test_Append_NoConflict_WhenOtherStreamMovedOn(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t)
	filter := filterForItem("9780321356680")
	_, maxSeqBefore, err := es.Query(ctx, filter)
	require.NoError(t, err)

	givenAppended(t, es, lent("9781098100131", "m-1"))

	// act
	err = es.Append(ctx, filter, maxSeqBefore, lent("9780321356680", "m-2"))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 2, es.Len())
}

func Test_Append_ConcurrentWritersOnSameStream_OnlyOneWins(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t)
	filter := filterForItem("9780321356680")
	_, maxSeqBefore, err := es.Query(ctx, filter)
	require.NoError(t, err)

	const writers = 20
	var wg sync.WaitGroup
	results := make(chan error, writers)

	// act
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results <- es.Append(ctx, filter, maxSeqBefore, lent("9780321356680", fmt.Sprintf("m-%d", i)))
		}(i)
	}

	wg.Wait()
	close(results)

	// assert
	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}

		assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, es.Len())
}

func Test_Append_MultipleEventsGetConsecutiveSequenceNumbers(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t)
	filter := filterForItem("9780321356680")

	// act
	err := es.Append(ctx, filter, 0, lent("9780321356680", "m-1"), returned("9780321356680", "m-1"))

	// assert
	require.NoError(t, err)
	_, maxSeq, err := es.Query(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, uint(2), maxSeq)
}

func Test_Append_WithoutEvents_ReturnsErrEmptyEventsSupplied(t *testing.T) {
	// arrange
	es := givenEventStore(t)

	// act
	err := es.Append(context.Background(), filterForItem("9780321356680"), 0)

	// assert
	assert.ErrorIs(t, err, eventstore.ErrEmptyEventsSupplied)
	assert.Equal(t, 0, es.Len())
}

func Test_Observability_LogsAndMetrics(t *testing.T) {
	// arrange
	ctx := context.Background()
	logHandler := helper.NewLogHandlerSpy(false)
	metrics := helper.NewMetricsCollectorSpy()
	es, err := memengine.NewEventStore(
		memengine.WithLogger(slog.New(logHandler)),
		memengine.WithMetrics(metrics),
	)
	require.NoError(t, err)
	filter := filterForItem("9780321356680")

	// act
	_, _, err = es.Query(ctx, filter)
	require.NoError(t, err)
	require.NoError(t, es.Append(ctx, filter, 0, lent("9780321356680", "m-1")))
	conflictErr := es.Append(ctx, filter, 0, lent("9780321356680", "m-2"))

	// assert
	assert.ErrorIs(t, conflictErr, eventstore.ErrConcurrencyConflict)
	assert.True(t, logHandler.HasDebugLog("query completed"))
	assert.True(t, logHandler.HasDebugLog("events appended"))
	assert.True(t, logHandler.HasInfoLog("concurrency conflict detected"))
	assert.True(t, metrics.HasDurationRecord("eventstore_query_duration_seconds"))
	assert.True(t, metrics.HasDurationRecord("eventstore_append_duration_seconds"))
	assert.Equal(t, 1, metrics.CounterCount("eventstore_concurrency_conflicts_total", nil))
}

func Test_NewEventStore_RejectsNilOptions(t *testing.T) {
	_, err := memengine.NewEventStore(memengine.WithLogger(nil))
	assert.ErrorIs(t, err, memengine.ErrNilLogger)

	_, err = memengine.NewEventStore(memengine.WithMetrics(nil))
	assert.ErrorIs(t, err, memengine.ErrNilMetricsCollector)
}

func givenEventStore(t *testing.T) *memengine.EventStore {
	t.Helper()

	es, err := memengine.NewEventStore()
	require.NoError(t, err)

	return es
}

func givenAppended(t *testing.T, es *memengine.EventStore, event eventstore.StorableEvent) {
	t.Helper()

	ctx := context.Background()
	filter := eventstore.BuildEventFilter().MatchingAnyEvent()
	_, maxSeq, err := es.Query(ctx, filter)
	require.NoError(t, err)
	require.NoError(t, es.Append(ctx, filter, maxSeq, event))
}

func filterForItem(itemID string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("ItemLentToMember", "ItemReturnedByMember").
		AndAnyPredicateOf(eventstore.P("ItemID", itemID)).
		Finalize()
}

func lent(itemID, memberID string) eventstore.StorableEvent {
	return storable("ItemLentToMember", itemID, memberID)
}

func returned(itemID, memberID string) eventstore.StorableEvent {
	return storable("ItemReturnedByMember", itemID, memberID)
}

func storable(eventType, itemID, memberID string) eventstore.StorableEvent {
	payload := fmt.Sprintf(`{"ItemID":%q,"MemberID":%q}`, itemID, memberID)

	event, err := eventstore.BuildStorableEventWithEmptyMetadata(eventType, time.Now(), []byte(payload))
	if err != nil {
		panic(err)
	}

	return event
}
