package addbookcopies

import (
	"fmt"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Operation names the use case in failure notifications and metrics.
const Operation = "add_copies"

// Decide adds copies to a book.
//
//	GIVEN: a book in the catalog
//	WHEN: AddBookCopies with a count of at least 1 is received
//	THEN: BookCopiesAdded is generated
//	ERROR: ErrInvalidCopyCount if the count is below 1
//	ERROR: ErrUnknownItem if the item is not in the catalog
//	ERROR: ErrNotABook if the item is a journal
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if command.Count < 1 {
		return failed(command, core.ErrInvalidCopyCount)
	}

	var added *core.ItemAddedToCatalog

	for _, event := range history {
		if e, ok := event.(core.ItemAddedToCatalog); ok && e.ItemID == command.ItemID.Code() {
			added = &e
		}
	}

	if added == nil {
		return failed(command, core.ErrUnknownItem)
	}

	if added.Kind != core.KindBook {
		return failed(command, core.ErrNotABook)
	}

	return core.SuccessDecision(core.BuildBookCopiesAdded(command.ItemID, command.Count, command.OccurredAt))
}

func failed(command Command, reason error) core.DecisionResult {
	event := core.BuildItemChangeFailed(Operation, command.ItemID, reason.Error(), command.OccurredAt)
	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType(), reason))
}

// BuildEventFilter selects the event that put the item into the catalog.
func BuildEventFilter(itemID core.Identifier) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.ItemAddedToCatalogEventType).
		AndAnyPredicateOf(eventstore.P("ItemID", itemID.Code())).
		Finalize()
}
