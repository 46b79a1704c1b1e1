// Package memengine provides an in-memory implementation of the event log.
//
// EventStore keeps an append-only slice of events, each stamped with a gapless sequence number starting
// at 1. Query returns the events matching an eventstore.Filter together with the highest sequence
// number among them. Append only succeeds when that number is still the one the caller saw, which gives
// optimistic concurrency per "dynamic event stream" without any locking on the caller's side.
//
// Nothing is persisted. Several loan managers can share one EventStore to simulate independent
// processes working on the same ledger.
package memengine
