// Package shell translates between the functional core of the loan ledger and the event log.
//
// It maps core.DomainEvent values to eventstore.StorableEvent and back using json-iterator, attaches
// message/causation/correlation metadata, and retries optimistic appends that ran into a concurrency
// conflict with exponential backoff.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
