package loanmanager

import (
	"fmt"
	"strings"

	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// SearchItems returns copies of the items the predicate accepts, in catalog order.
// A nil predicate accepts every item.
//
// The predicate runs without any lock held, so it may call back into the Manager.
func (m *Manager) SearchItems(predicate func(core.CatalogItem) bool) []core.CatalogItem {
	m.mu.RLock()
	items := append([]core.CatalogItem(nil), m.model.items...)
	m.mu.RUnlock()

	found := make([]core.CatalogItem, 0, len(items))

	for _, item := range items {
		candidate := core.CloneItem(item)

		if predicate == nil || predicate(candidate) {
			found = append(found, core.CloneItem(item))
		}
	}

	return found
}

// MatchesSearch reports whether any title contains query. The match is case-sensitive.
func (m *Manager) MatchesSearch(query string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, item := range m.model.items {
		if strings.Contains(item.Title(), query) {
			return true
		}
	}

	return false
}

// Items returns copies of all items in catalog order.
func (m *Manager) Items() []core.CatalogItem {
	return m.SearchItems(nil)
}

func (m *Manager) Item(id core.Identifier) (core.CatalogItem, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.model.item(id.Code())
	if !ok {
		return nil, false
	}

	return core.CloneItem(item), true
}

func (m *Manager) Members() []core.Member {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]core.Member(nil), m.model.members...)
}

func (m *Manager) Member(id string) (core.Member, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.model.member(id)
}

// Loans returns all loans, active and returned, in the order they were opened.
func (m *Manager) Loans() []core.Loan {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]core.Loan(nil), m.model.loans...)
}

// ActiveLoanFor returns the active loan of the item, if any.
func (m *Manager) ActiveLoanFor(id core.Identifier) (core.Loan, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	active := m.model.activeLoans(id.Code())
	if len(active) == 0 {
		return core.Loan{}, false
	}

	return active[0], true
}

// OverdueLoans lists the active loans that are past their due date today, with the fine accrued so far.
func (m *Manager) OverdueLoans() []OverdueLoan {
	today := m.clock.Now()

	m.mu.RLock()
	defer m.mu.RUnlock()

	overdue := make([]OverdueLoan, 0)

	for _, loan := range m.model.loans {
		if !loan.IsOverdue(today) {
			continue
		}

		member, _ := m.model.member(loan.MemberID())
		days := loan.DaysOverdue(today)

		overdue = append(overdue, OverdueLoan{
			Loan:        loan,
			Member:      member,
			DaysOverdue: days,
			AccruedFine: m.finePolicy.CalculateFine(days, member.Type()),
		})
	}

	return overdue
}

// CheckInvariants verifies that every item is checked out exactly when it has one active loan.
func (m *Manager) CheckInvariants() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, item := range m.model.items {
		active := len(m.model.activeLoans(item.Identifier().Code()))

		if active > 1 || item.IsCheckedOut() != (active == 1) {
			return fmt.Errorf(
				"%w: %s checked out %t with %d active loans",
				core.ErrLoanInvariantViolated,
				item.Identifier(),
				item.IsCheckedOut(),
				active,
			)
		}
	}

	return nil
}
