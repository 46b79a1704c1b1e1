package returnitem

import (
	"fmt"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Operation names the use case in metrics and logs.
const Operation = "return_item"

// Decide implements the rules for closing a loan. It is a pure function.
//
//	GIVEN: an item with exactly one active loan
//	WHEN: ReturnItem is received
//	THEN: ItemReturnedByMember is generated, carrying the due date and the return date
//	ERROR: ErrItemNotFound if the item has no active loan
//	ERROR: ErrLoanInvariantViolated if the item has more than one active loan
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	active := activeLoans(history, command.ItemID.Code())

	switch len(active) {
	case 0:
		return failed(command, core.ErrItemNotFound)
	case 1:
	default:
		return failed(command, core.ErrLoanInvariantViolated)
	}

	loan, err := active[0].ToLoan()
	if err != nil {
		return failed(command, err)
	}

	return core.SuccessDecision(core.BuildItemReturnedByMember(loan, command.ReturnedAt))
}

func failed(command Command, reason error) core.DecisionResult {
	event := core.BuildReturningItemFailed(command.ItemID, reason.Error(), command.ReturnedAt)
	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType(), reason))
}

// activeLoans returns the opening events of the item's loans that were not closed, in history order.
func activeLoans(history core.DomainEvents, itemID string) []core.ItemLentToMember {
	var open []core.ItemLentToMember

	for _, event := range history {
		switch e := event.(type) {
		case core.ItemLentToMember:
			if e.ItemID == itemID {
				open = append(open, e)
			}

		case core.ItemReturnedByMember:
			if e.ItemID != itemID {
				continue
			}

			for i := range open {
				if open[i].LoanID == e.LoanID {
					open = append(open[:i], open[i+1:]...)
					break
				}
			}
		}
	}

	return open
}

// BuildEventFilter selects the loan events of the item.
func BuildEventFilter(itemID core.Identifier) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.ItemLentToMemberEventType,
			core.ItemReturnedByMemberEventType,
		).
		AndAnyPredicateOf(eventstore.P("ItemID", itemID.Code())).
		Finalize()
}
