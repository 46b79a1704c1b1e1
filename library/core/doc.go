// Package core is the functional core of the library loan ledger.
//
// It holds the value types of the domain (Identifier, CatalogItem with its Book and Journal variants,
// Member, Loan, FinePolicy) and the domain events that record every state change of the ledger:
// ItemAddedToCatalog, BookCopiesAdded, MemberRegistered, MemberRenamed, ItemLentToMember and
// ItemReturnedByMember. Failure events (LendingItemFailed, ReturningItemFailed, CatalogChangeFailed)
// and FineAssessed are notifications only, they never enter the event log.
//
// Nothing in here does I/O, reads the wall clock, or generates random ids on its own. Time comes in
// through a Clock and ids through an IDGenerator, so tests can supply deterministic ones.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
