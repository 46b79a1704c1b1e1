// Package eventstore holds the storage-agnostic building blocks of the loan ledger's event log.
//
// A ledger never updates records in place. Every state change of the library (an item added to the
// catalog, a member registered, a loan opened or closed) is appended as an event, and current state is
// derived by folding those events. Engines like memengine implement Query and Append on top of the
// types defined here.
//
// Consistency is optimistic and scoped by a Filter, the "dynamic consistency boundary":
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(
//			core.ItemLentToMemberEventType,
//			core.ItemReturnedByMemberEventType).
//		AndAnyPredicateOf(eventstore.P("ItemID", itemID)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	if err != nil {
//		// handle error
//	}
//
//	// decide on the events, then append with the same filter
//	err = store.Append(ctx, filter, maxSeq, newEvent)
//	if errors.Is(err, eventstore.ErrConcurrencyConflict) {
//		// somebody else appended a matching event in the meantime, query again and retry
//	}
package eventstore
