package addcatalogitem

import (
	"time"

	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Command adds a book or journal to the catalog.
type Command struct {
	Item       core.CatalogItem
	OccurredAt core.OccurredAt
}

// BuildCommand creates a Command.
func BuildCommand(item core.CatalogItem, occurredAt time.Time) Command {
	return Command{
		Item:       item,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
