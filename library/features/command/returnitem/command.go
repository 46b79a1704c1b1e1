package returnitem

import (
	"time"

	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Command closes the active loan of ItemID. The return date is the calendar day of ReturnedAt in its own location.
type Command struct {
	ItemID     core.Identifier
	ReturnedAt time.Time
}

func BuildCommand(itemID core.Identifier, returnedAt time.Time) Command {
	return Command{
		ItemID:     itemID,
		ReturnedAt: returnedAt,
	}
}
