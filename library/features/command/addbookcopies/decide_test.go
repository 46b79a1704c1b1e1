package addbookcopies_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-loans-go/library/core"
	"github.com/AntonStoeckl/library-loans-go/library/features/command/addbookcopies"
	"github.com/AntonStoeckl/library-loans-go/testutil/helper"
)

func Test_Decide(t *testing.T) {
	now := time.Now()
	bookID := core.MustIdentifier(helper.FixtureBookCode)
	journalID := core.MustIdentifier(helper.FixtureJournalCode)
	catalog := core.DomainEvents{
		helper.GivenItemAddedToCatalog(t, helper.FixtureBook(), now.Add(-time.Hour)),
		helper.GivenItemAddedToCatalog(t, helper.FixtureJournal(), now.Add(-time.Hour)),
	}

	tests := []struct {
		name        string
		command     addbookcopies.Command
		expectedErr error
	}{
		{name: "adds copies to a book", command: addbookcopies.BuildCommand(bookID, 3, now)},
		{name: "rejects zero copies", command: addbookcopies.BuildCommand(bookID, 0, now), expectedErr: core.ErrInvalidCopyCount},
		{name: "rejects negative copies", command: addbookcopies.BuildCommand(bookID, -2, now), expectedErr: core.ErrInvalidCopyCount},
		{name: "rejects journals", command: addbookcopies.BuildCommand(journalID, 1, now), expectedErr: core.ErrNotABook},
		{name: "rejects unknown items", command: addbookcopies.BuildCommand(core.MustIdentifier("9781098100131"), 1, now), expectedErr: core.ErrUnknownItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			result := addbookcopies.Decide(catalog, tt.command)

			// assert
			if tt.expectedErr != nil {
				assert.ErrorIs(t, result.HasError(), tt.expectedErr)
				assert.False(t, result.HasEventToAppend())
				return
			}

			assert.NoError(t, result.HasError())
			assert.Equal(t, core.BuildBookCopiesAdded(bookID, 3, now), result.Event)
		})
	}
}
