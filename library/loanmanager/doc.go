// Package loanmanager is the entry point for the catalog and the loan lifecycle.
//
// A Manager runs every mutation as query, decide, append against an event store and keeps an in-memory read
// model of items, members and loans that is folded from the appended events. Mutations are serialized by a
// write lock and retried on concurrency conflicts, so several managers can share one event store. Queries take
// a read lock and return copies. They do not consult the store: events appended by another Manager become
// visible with this Manager's next mutation or with Refresh.
//
// The manager never prints. Outcomes that a presentation layer wants to render are delivered to observers:
// the appended events, the failure notifications (LendingItemFailed, ReturningItemFailed, CatalogChangeFailed)
// and FineAssessed for late returns.
package loanmanager
