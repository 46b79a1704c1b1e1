package core

import (
	"time"
)

// ItemReturnedByMemberEventType is the event type identifier.
const ItemReturnedByMemberEventType = "ItemReturnedByMember"

// ItemReturnedByMember closes a loan. DueDate is carried along so that overdue days can be derived
// without looking up the opening event.
type ItemReturnedByMember struct {
	LoanID     LoanIDString
	ItemID     ItemIDString
	MemberID   MemberIDString
	DueDate    time.Time
	ReturnDate time.Time
	OccurredAt OccurredAt
}

func BuildItemReturnedByMember(loan Loan, returnedAt time.Time) ItemReturnedByMember {
	return ItemReturnedByMember{
		LoanID:     loan.ID(),
		ItemID:     loan.ItemID().Code(),
		MemberID:   loan.MemberID(),
		DueDate:    loan.DueDate(),
		ReturnDate: CivilDate(returnedAt),
		OccurredAt: ToOccurredAt(returnedAt),
	}
}

// DaysOverdue counts the calendar days from the due date to the return date, or 0.
func (e ItemReturnedByMember) DaysOverdue() int {
	return max(DaysBetween(e.DueDate, e.ReturnDate), 0)
}

func (e ItemReturnedByMember) EventType() string {
	return ItemReturnedByMemberEventType
}

func (e ItemReturnedByMember) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e ItemReturnedByMember) IsErrorEvent() bool {
	return false
}
