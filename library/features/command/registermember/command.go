package registermember

import (
	"time"

	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Command registers a member whose id was already generated.
type Command struct {
	Member     core.Member
	OccurredAt core.OccurredAt
}

// BuildCommand creates a Command.
func BuildCommand(member core.Member, occurredAt time.Time) Command {
	return Command{
		Member:     member,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
