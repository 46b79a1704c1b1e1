package core

import (
	"time"
)

// MemberRenamedEventType is the event type identifier.
const MemberRenamedEventType = "MemberRenamed"

// MemberRenamed records a change of a member's display name.
type MemberRenamed struct {
	MemberID   MemberIDString
	Name       string
	OccurredAt OccurredAt
}

func BuildMemberRenamed(memberID string, name string, occurredAt time.Time) MemberRenamed {
	return MemberRenamed{
		MemberID:   memberID,
		Name:       name,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e MemberRenamed) EventType() string {
	return MemberRenamedEventType
}

func (e MemberRenamed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e MemberRenamed) IsErrorEvent() bool {
	return false
}
