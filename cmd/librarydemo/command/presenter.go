package command

import (
	"context"
	"fmt"
	"io"

	"github.com/AntonStoeckl/library-loans-go/library/core"
	"github.com/AntonStoeckl/library-loans-go/library/loanmanager"
)

// presenter renders the manager's notifications as console messages.
type presenter struct {
	out     io.Writer
	manager *loanmanager.Manager
}

func (p *presenter) Observe(_ context.Context, event core.DomainEvent) {
	switch e := event.(type) {
	case core.ItemLentToMember:
		fmt.Fprintf(p.out, "%s loaned to %s. Due on %s.\n", p.title(e.ItemID), p.name(e.MemberID), e.DueDate.Format(core.DateLayout))

	case core.LendingItemFailed:
		if e.FailureInfo == core.ErrItemAlreadyLent.Error() {
			fmt.Fprintln(p.out, "Item is currently checked out.")
			return
		}

		fmt.Fprintf(p.out, "Loan of %s failed: %s.\n", p.title(e.ItemID), e.FailureInfo)

	case core.ItemReturnedByMember:
		fmt.Fprintf(p.out, "%s returned by %s. Status: %s.\n", p.title(e.ItemID), p.name(e.MemberID), core.LoanReturned)

	case core.FineAssessed:
		fmt.Fprintf(p.out, "Fine calculated: $%s\n", e.Amount.StringFixed(2))

	case core.ReturningItemFailed:
		fmt.Fprintf(p.out, "Return of %s failed: %s.\n", p.title(e.ItemID), e.FailureInfo)

	case core.CatalogChangeFailed:
		fmt.Fprintf(p.out, "%s failed: %s.\n", e.Operation, e.FailureInfo)
	}
}

func (p *presenter) title(itemID string) string {
	id, err := core.NewIdentifier(itemID)
	if err != nil {
		return itemID
	}

	if item, ok := p.manager.Item(id); ok {
		return item.Title()
	}

	return id.String()
}

func (p *presenter) name(memberID string) string {
	if member, ok := p.manager.Member(memberID); ok {
		return member.Name()
	}

	return memberID
}
