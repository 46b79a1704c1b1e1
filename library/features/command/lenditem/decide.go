package lenditem

import (
	"fmt"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Operation names the use case in metrics and logs.
const Operation = "loan_item"

// state represents the current state projected from the event history.
type state struct {
	itemIsInCatalog    bool
	memberIsRegistered bool
	activeLoans        int
}

// Decide implements the rules for opening a loan. It is a pure function.
//
//	GIVEN: an item in the catalog and a registered member
//	WHEN: LendItem is received
//	THEN: ItemLentToMember is generated
//	ERROR: ErrUnknownItem if the item is not in the catalog
//	ERROR: ErrUnknownMember if the member is not registered
//	ERROR: ErrItemAlreadyLent if the item has an active loan, whoever holds it
//	ERROR: ErrInvalidLoanPeriod if the due date is before the loan date
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.ItemID.Code(), command.MemberID)

	if !s.itemIsInCatalog {
		return failed(command, core.ErrUnknownItem)
	}

	if !s.memberIsRegistered {
		return failed(command, core.ErrUnknownMember)
	}

	if s.activeLoans > 0 {
		return failed(command, core.ErrItemAlreadyLent)
	}

	loan, err := core.NewLoan(command.LoanID, command.ItemID, command.MemberID, command.LoanDate, command.DueDate)
	if err != nil {
		return failed(command, err)
	}

	return core.SuccessDecision(core.BuildItemLentToMember(loan, command.OccurredAt))
}

func failed(command Command, reason error) core.DecisionResult {
	event := core.BuildLendingItemFailed(command.ItemID, command.MemberID, reason.Error(), command.OccurredAt)
	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType(), reason))
}

func project(history core.DomainEvents, itemID string, memberID string) state {
	s := state{}

	for _, event := range history {
		switch e := event.(type) {
		case core.ItemAddedToCatalog:
			if e.ItemID == itemID {
				s.itemIsInCatalog = true
			}

		case core.MemberRegistered:
			if e.MemberID == memberID {
				s.memberIsRegistered = true
			}

		case core.ItemLentToMember:
			if e.ItemID == itemID {
				s.activeLoans++
			}

		case core.ItemReturnedByMember:
			if e.ItemID == itemID {
				s.activeLoans--
			}
		}
	}

	return s
}

// BuildEventFilter selects the item's catalog and loan events and the member's registration.
func BuildEventFilter(itemID core.Identifier, memberID string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.ItemAddedToCatalogEventType,
			core.ItemLentToMemberEventType,
			core.ItemReturnedByMemberEventType,
		).
		AndAnyPredicateOf(eventstore.P("ItemID", itemID.Code())).
		OrMatching().
		AnyEventTypeOf(core.MemberRegisteredEventType).
		AndAnyPredicateOf(eventstore.P("MemberID", memberID)).
		Finalize()
}
