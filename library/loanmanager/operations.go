package loanmanager

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/library-loans-go/library/core"
	"github.com/AntonStoeckl/library-loans-go/library/features/command/addbookcopies"
	"github.com/AntonStoeckl/library-loans-go/library/features/command/addcatalogitem"
	"github.com/AntonStoeckl/library-loans-go/library/features/command/lenditem"
	"github.com/AntonStoeckl/library-loans-go/library/features/command/registermember"
	"github.com/AntonStoeckl/library-loans-go/library/features/command/renamemember"
	"github.com/AntonStoeckl/library-loans-go/library/features/command/returnitem"
)

// AddItem adds an item to the catalog. Identifiers are unique: a second item with the same identifier
// is rejected with core.ErrDuplicateIdentifier.
func (m *Manager) AddItem(ctx context.Context, item core.CatalogItem) error {
	if item == nil {
		return core.ErrUnknownItem
	}

	command := addcatalogitem.BuildCommand(item, m.clock.Now())

	_, err := m.execute(
		ctx,
		addcatalogitem.Operation,
		addcatalogitem.BuildEventFilter(item.Identifier()),
		func(history core.DomainEvents) core.DecisionResult { return addcatalogitem.Decide(history, command) },
		nil,
	)

	return err
}

// AddCopies adds n copies to the book with the identifier.
func (m *Manager) AddCopies(ctx context.Context, itemID core.Identifier, n int) error {
	command := addbookcopies.BuildCommand(itemID, n, m.clock.Now())

	_, err := m.execute(
		ctx,
		addbookcopies.Operation,
		addbookcopies.BuildEventFilter(itemID),
		func(history core.DomainEvents) core.DecisionResult { return addbookcopies.Decide(history, command) },
		nil,
	)

	return err
}

// AddMembers registers the members in order and stops at the first failure.
func (m *Manager) AddMembers(ctx context.Context, members ...core.Member) error {
	for _, member := range members {
		if err := m.registerMember(ctx, member); err != nil {
			return err
		}
	}

	return nil
}

// RegisterMember creates a member with a generated id and registers it.
func (m *Manager) RegisterMember(ctx context.Context, name string, memberType core.MemberType) (core.Member, error) {
	if _, err := core.ParseMemberType(memberType.String()); err != nil {
		return core.Member{}, err
	}

	member := core.NewMember(m.ids, name, memberType)

	if err := m.registerMember(ctx, member); err != nil {
		return core.Member{}, err
	}

	return member, nil
}

func (m *Manager) registerMember(ctx context.Context, member core.Member) error {
	command := registermember.BuildCommand(member, m.clock.Now())

	_, err := m.execute(
		ctx,
		registermember.Operation,
		registermember.BuildEventFilter(member.ID()),
		func(history core.DomainEvents) core.DecisionResult { return registermember.Decide(history, command) },
		nil,
	)

	return err
}

func (m *Manager) RenameMember(ctx context.Context, memberID string, name string) error {
	command := renamemember.BuildCommand(memberID, name, m.clock.Now())

	_, err := m.execute(
		ctx,
		renamemember.Operation,
		renamemember.BuildEventFilter(memberID),
		func(history core.DomainEvents) core.DecisionResult { return renamemember.Decide(history, command) },
		nil,
	)

	return err
}

// LoanItem lends the item to the member from today for the loan period.
//
// If the item is checked out nothing changes: ok is false, err is nil and observers receive
// LendingItemFailed. Unknown items and members are errors.
func (m *Manager) LoanItem(ctx context.Context, item core.CatalogItem, member core.Member) (core.Loan, bool, error) {
	today := core.CivilDate(m.clock.Now())

	return m.LoanItemBetween(ctx, item, member, today, today.AddDate(0, 0, m.loanPeriodDays))
}

// LoanItemBetween is LoanItem with caller-supplied dates, e.g. to record a loan that started in the past.
// A due date before the loan date is rejected with core.ErrInvalidLoanPeriod.
func (m *Manager) LoanItemBetween(
	ctx context.Context,
	item core.CatalogItem,
	member core.Member,
	loanDate time.Time,
	dueDate time.Time,
) (core.Loan, bool, error) {

	if item == nil {
		return core.Loan{}, false, core.ErrUnknownItem
	}

	command := lenditem.BuildCommand(m.ids.NewID(), item.Identifier(), member.ID(), loanDate, dueDate, m.clock.Now())

	result, err := m.execute(
		ctx,
		lenditem.Operation,
		lenditem.BuildEventFilter(item.Identifier(), member.ID()),
		func(history core.DomainEvents) core.DecisionResult { return lenditem.Decide(history, command) },
		nil,
	)

	if errors.Is(err, core.ErrItemAlreadyLent) {
		return core.Loan{}, false, nil
	}

	if err != nil {
		return core.Loan{}, false, err
	}

	lent, ok := result.Event.(core.ItemLentToMember)
	if !ok {
		return core.Loan{}, false, core.ErrLoanInvariantViolated
	}

	loan, err := lent.ToLoan()
	if err != nil {
		return core.Loan{}, false, err
	}

	return loan, true, nil
}

// ReturnItem closes the active loan of the item as of today.
//
// Without an active loan the result is an error wrapping core.ErrItemNotFound and nothing changes.
// A late return carries the days overdue and the fine, and observers receive FineAssessed.
// Fines are reported, never stored.
func (m *Manager) ReturnItem(ctx context.Context, item core.CatalogItem) (ReturnReceipt, error) {
	if item == nil {
		return ReturnReceipt{}, core.ErrItemNotFound
	}

	command := returnitem.BuildCommand(item.Identifier(), m.clock.Now())
	receipt := ReturnReceipt{Fine: decimal.Zero}

	_, err := m.execute(
		ctx,
		returnitem.Operation,
		returnitem.BuildEventFilter(item.Identifier()),
		func(history core.DomainEvents) core.DecisionResult { return returnitem.Decide(history, command) },
		func(ctx context.Context, appended core.DomainEvent) core.DomainEvents {
			returned, ok := appended.(core.ItemReturnedByMember)
			if !ok {
				return nil
			}

			receipt.Loan, _ = m.model.loan(returned.LoanID)
			receipt.DaysOverdue = returned.DaysOverdue()

			if !receipt.IsLate() {
				return nil
			}

			member, _ := m.model.member(returned.MemberID)
			receipt.Fine = m.finePolicy.CalculateFine(receipt.DaysOverdue, member.Type())

			m.recordFine(ctx, member.Type().String())
			m.logInfo(ctx, logMsgFineAssessed,
				logAttrLoanID, returned.LoanID,
				logAttrDaysOverdue, receipt.DaysOverdue,
				logAttrAmount, receipt.Fine.StringFixed(2),
			)

			return core.DomainEvents{core.BuildFineAssessed(returned, member.Type(), receipt.Fine)}
		},
	)

	if err != nil {
		return ReturnReceipt{}, err
	}

	return receipt, nil
}
