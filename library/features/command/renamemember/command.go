package renamemember

import (
	"time"

	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Command changes a member's display name.
type Command struct {
	MemberID   core.MemberIDString
	Name       string
	OccurredAt core.OccurredAt
}

// BuildCommand creates a Command.
func BuildCommand(memberID string, name string, occurredAt time.Time) Command {
	return Command{
		MemberID:   memberID,
		Name:       name,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
