package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-loans-go/library/core"
)

const (
	FixtureBookCode    = "978-0321356680"
	FixtureJournalCode = "977-1234567003"
)

// FixtureBook returns "Effective Java" with one copy.
func FixtureBook() *core.Book {
	return core.NewBook("Effective Java", core.MustIdentifier(FixtureBookCode), "Joshua Bloch")
}

// FixtureJournal returns a journal with volume 612, issue 7948.
func FixtureJournal() *core.Journal {
	return core.NewJournal("Nature", core.MustIdentifier(FixtureJournalCode), 612, 7948)
}

func GivenItemAddedToCatalog(t testing.TB, item core.CatalogItem, occurredAt time.Time) core.DomainEvent {
	t.Helper()

	return core.BuildItemAddedToCatalog(item, occurredAt)
}

func GivenMemberRegistered(t testing.TB, member core.Member, occurredAt time.Time) core.DomainEvent {
	t.Helper()

	return core.BuildMemberRegistered(member, occurredAt)
}

func GivenMemberRenamed(t testing.TB, memberID string, name string, occurredAt time.Time) core.DomainEvent {
	t.Helper()

	return core.BuildMemberRenamed(memberID, name, occurredAt)
}

// GivenItemLentToMember builds the event for a loan that started on loanDate and is due after days.
func GivenItemLentToMember(
	t testing.TB,
	loanID string,
	itemID core.Identifier,
	memberID string,
	loanDate time.Time,
	days int,
) core.ItemLentToMember {

	t.Helper()

	loan, err := core.NewLoan(loanID, itemID, memberID, loanDate, loanDate.AddDate(0, 0, days))
	require.NoError(t, err, "error in arranging test data")

	return core.BuildItemLentToMember(loan, loanDate)
}

// GivenItemReturnedByMember closes the loan opened by lent.
func GivenItemReturnedByMember(t testing.TB, lent core.ItemLentToMember, returnedAt time.Time) core.DomainEvent {
	t.Helper()

	loan, err := lent.ToLoan()
	require.NoError(t, err, "error in arranging test data")

	return core.BuildItemReturnedByMember(loan, returnedAt)
}
