package addcatalogitem

import (
	"fmt"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Operation names the use case in failure notifications and metrics.
const Operation = "add_item"

// Decide adds an item to the catalog.
//
//	GIVEN: an item with an identifier
//	WHEN: the AddCatalogItem command is received
//	THEN: ItemAddedToCatalog is generated
//	ERROR: ErrDuplicateIdentifier if an item with the same identifier is already in the catalog
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	itemID := command.Item.Identifier()

	for _, event := range history {
		if e, ok := event.(core.ItemAddedToCatalog); ok && e.ItemID == itemID.Code() {
			failed := core.BuildItemChangeFailed(Operation, itemID, core.ErrDuplicateIdentifier.Error(), command.OccurredAt)
			return core.ErrorDecision(failed, fmt.Errorf("%s: %w", failed.EventType(), core.ErrDuplicateIdentifier))
		}
	}

	return core.SuccessDecision(core.BuildItemAddedToCatalog(command.Item, command.OccurredAt))
}

// BuildEventFilter selects the events that tell whether the identifier is taken.
func BuildEventFilter(itemID core.Identifier) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.ItemAddedToCatalogEventType).
		AndAnyPredicateOf(eventstore.P("ItemID", itemID.Code())).
		Finalize()
}
