package loanmanager

import (
	"maps"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// readModel is the current state folded from the event log. It is guarded by Manager.mu.
type readModel struct {
	items       []core.CatalogItem
	itemIndex   map[core.ItemIDString]int
	members     []core.Member
	memberIndex map[core.MemberIDString]int
	loans       []core.Loan
	loanIndex   map[core.LoanIDString]int
	applied     eventstore.MaxSequenceNumberUint
}

func newReadModel() *readModel {
	return &readModel{
		items:       make([]core.CatalogItem, 0),
		itemIndex:   make(map[core.ItemIDString]int),
		members:     make([]core.Member, 0),
		memberIndex: make(map[core.MemberIDString]int),
		loans:       make([]core.Loan, 0),
		loanIndex:   make(map[core.LoanIDString]int),
	}
}

// clone copies the containers. Items, members and loans are replaced on change, never mutated in place,
// so the elements can be shared.
func (rm *readModel) clone() *readModel {
	return &readModel{
		items:       append(make([]core.CatalogItem, 0, len(rm.items)), rm.items...),
		itemIndex:   maps.Clone(rm.itemIndex),
		members:     append(make([]core.Member, 0, len(rm.members)), rm.members...),
		memberIndex: maps.Clone(rm.memberIndex),
		loans:       append(make([]core.Loan, 0, len(rm.loans)), rm.loans...),
		loanIndex:   maps.Clone(rm.loanIndex),
		applied:     rm.applied,
	}
}

// apply folds one persisted event into the model.
func (rm *readModel) apply(event core.DomainEvent) error {
	switch e := event.(type) {
	case core.ItemAddedToCatalog:
		item, err := e.ToCatalogItem()
		if err != nil {
			return err
		}

		rm.itemIndex[e.ItemID] = len(rm.items)
		rm.items = append(rm.items, item)

	case core.BookCopiesAdded:
		idx, ok := rm.itemIndex[e.ItemID]
		if !ok {
			return core.ErrUnknownItem
		}

		book, ok := core.CloneItem(rm.items[idx]).(*core.Book)
		if !ok {
			return core.ErrNotABook
		}

		book.AddCopies(e.Count)
		rm.items[idx] = book

	case core.MemberRegistered:
		rm.memberIndex[e.MemberID] = len(rm.members)
		rm.members = append(rm.members, e.ToMember())

	case core.MemberRenamed:
		idx, ok := rm.memberIndex[e.MemberID]
		if !ok {
			return core.ErrUnknownMember
		}

		rm.members[idx] = rm.members[idx].Rename(e.Name)

	case core.ItemLentToMember:
		loan, err := e.ToLoan()
		if err != nil {
			return err
		}

		rm.loanIndex[e.LoanID] = len(rm.loans)
		rm.loans = append(rm.loans, loan)
		rm.setCheckedOut(e.ItemID, true)

	case core.ItemReturnedByMember:
		idx, ok := rm.loanIndex[e.LoanID]
		if !ok {
			return core.ErrItemNotFound
		}

		rm.loans[idx] = rm.loans[idx].MarkReturned()
		rm.setCheckedOut(e.ItemID, false)
	}

	return nil
}

func (rm *readModel) setCheckedOut(itemID core.ItemIDString, checkedOut bool) {
	if idx, ok := rm.itemIndex[itemID]; ok {
		rm.items[idx] = core.WithCheckedOut(rm.items[idx], checkedOut)
	}
}

func (rm *readModel) item(itemID core.ItemIDString) (core.CatalogItem, bool) {
	idx, ok := rm.itemIndex[itemID]
	if !ok {
		return nil, false
	}

	return rm.items[idx], true
}

func (rm *readModel) member(memberID core.MemberIDString) (core.Member, bool) {
	idx, ok := rm.memberIndex[memberID]
	if !ok {
		return core.Member{}, false
	}

	return rm.members[idx], true
}

func (rm *readModel) loan(loanID core.LoanIDString) (core.Loan, bool) {
	idx, ok := rm.loanIndex[loanID]
	if !ok {
		return core.Loan{}, false
	}

	return rm.loans[idx], true
}

// activeLoans returns the active loans of the item in insertion order.
func (rm *readModel) activeLoans(itemID core.ItemIDString) []core.Loan {
	var active []core.Loan

	for _, loan := range rm.loans {
		if loan.IsActive() && loan.ItemID().Code() == itemID {
			active = append(active, loan)
		}
	}

	return active
}
