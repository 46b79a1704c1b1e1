package addbookcopies

import (
	"time"

	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Command adds copies of a book that is already in the catalog.
type Command struct {
	ItemID     core.Identifier
	Count      int
	OccurredAt core.OccurredAt
}

// BuildCommand creates a Command.
func BuildCommand(itemID core.Identifier, count int, occurredAt time.Time) Command {
	return Command{
		ItemID:     itemID,
		Count:      count,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
