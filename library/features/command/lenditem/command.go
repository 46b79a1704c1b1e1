package lenditem

import (
	"time"

	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Command lends an item to a member for the period from LoanDate to DueDate.
type Command struct {
	LoanID     core.LoanIDString
	ItemID     core.Identifier
	MemberID   core.MemberIDString
	LoanDate   time.Time
	DueDate    time.Time
	OccurredAt core.OccurredAt
}

// BuildCommand creates a Command. The dates are validated by Decide.
func BuildCommand(
	loanID string,
	itemID core.Identifier,
	memberID string,
	loanDate time.Time,
	dueDate time.Time,
	occurredAt time.Time,
) Command {

	return Command{
		LoanID:     loanID,
		ItemID:     itemID,
		MemberID:   memberID,
		LoanDate:   loanDate,
		DueDate:    dueDate,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
