package core

import (
	"fmt"
	"time"
)

// LoanStatus is the state of one loan.
// Only Active and Returned are recorded; Overdue is derived from the due date, see Loan.StatusAt.
type LoanStatus string

const (
	LoanActive   LoanStatus = "ACTIVE"
	LoanReturned LoanStatus = "RETURNED"
	LoanOverdue  LoanStatus = "OVERDUE"
)

func (s LoanStatus) String() string {
	return string(s)
}

// Loan binds one item to one member for a period. It is immutable; MarkReturned returns a new version.
type Loan struct {
	id       string
	itemID   Identifier
	memberID string
	loanDate time.Time
	dueDate  time.Time
	status   LoanStatus
}

// NewLoan creates an active loan. Both dates are reduced to calendar days.
// A due date before the loan date yields ErrInvalidLoanPeriod.
func NewLoan(id string, itemID Identifier, memberID string, loanDate time.Time, dueDate time.Time) (Loan, error) {
	loanDay := CivilDate(loanDate)
	dueDay := CivilDate(dueDate)

	if dueDay.Before(loanDay) {
		return Loan{}, fmt.Errorf(
			"%w: loan date %s, due date %s",
			ErrInvalidLoanPeriod,
			loanDay.Format(DateLayout),
			dueDay.Format(DateLayout),
		)
	}

	return Loan{
		id:       id,
		itemID:   itemID,
		memberID: memberID,
		loanDate: loanDay,
		dueDate:  dueDay,
		status:   LoanActive,
	}, nil
}

func (l Loan) ID() string {
	return l.id
}

func (l Loan) ItemID() Identifier {
	return l.itemID
}

func (l Loan) MemberID() string {
	return l.memberID
}

func (l Loan) LoanDate() time.Time {
	return l.loanDate
}

func (l Loan) DueDate() time.Time {
	return l.dueDate
}

// Status returns the recorded status, Active or Returned.
func (l Loan) Status() LoanStatus {
	return l.status
}

func (l Loan) IsActive() bool {
	return l.status == LoanActive
}

// MarkReturned returns a copy with status Returned.
func (l Loan) MarkReturned() Loan {
	l.status = LoanReturned
	return l
}

// DaysOverdue returns the whole days asOf lies after the due date, or 0.
func (l Loan) DaysOverdue(asOf time.Time) int {
	return max(DaysBetween(l.dueDate, asOf), 0)
}

// IsOverdue reports whether an active loan is past its due date at asOf.
func (l Loan) IsOverdue(asOf time.Time) bool {
	return l.IsActive() && l.DaysOverdue(asOf) > 0
}

// StatusAt derives the displayed status: an active loan past its due date is Overdue.
func (l Loan) StatusAt(asOf time.Time) LoanStatus {
	if l.IsOverdue(asOf) {
		return LoanOverdue
	}

	return l.status
}

func (l Loan) Details() string {
	return fmt.Sprintf(
		"Loan %s: %s to member %s from %s, due %s (%s)",
		l.id,
		l.itemID,
		l.memberID,
		l.loanDate.Format(DateLayout),
		l.dueDate.Format(DateLayout),
		l.status,
	)
}
