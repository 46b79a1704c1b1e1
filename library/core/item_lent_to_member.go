package core

import (
	"time"
)

// ItemLentToMemberEventType is the event type identifier.
const ItemLentToMemberEventType = "ItemLentToMember"

// ItemLentToMember opens a loan.
type ItemLentToMember struct {
	LoanID     LoanIDString
	ItemID     ItemIDString
	MemberID   MemberIDString
	LoanDate   time.Time
	DueDate    time.Time
	OccurredAt OccurredAt
}

// BuildItemLentToMember creates the event from a freshly constructed, active loan.
func BuildItemLentToMember(loan Loan, occurredAt time.Time) ItemLentToMember {
	return ItemLentToMember{
		LoanID:     loan.ID(),
		ItemID:     loan.ItemID().Code(),
		MemberID:   loan.MemberID(),
		LoanDate:   loan.LoanDate(),
		DueDate:    loan.DueDate(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// ToLoan rebuilds the active loan the event opened.
func (e ItemLentToMember) ToLoan() (Loan, error) {
	itemID, err := NewIdentifier(e.ItemID)
	if err != nil {
		return Loan{}, err
	}

	return NewLoan(e.LoanID, itemID, e.MemberID, e.LoanDate, e.DueDate)
}

func (e ItemLentToMember) EventType() string {
	return ItemLentToMemberEventType
}

func (e ItemLentToMember) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e ItemLentToMember) IsErrorEvent() bool {
	return false
}
