package core

import (
	"time"
)

// MemberRegisteredEventType is the event type identifier.
const MemberRegisteredEventType = "MemberRegistered"

// MemberRegistered records a new member.
type MemberRegistered struct {
	MemberID   MemberIDString
	Name       string
	MemberType MemberType
	OccurredAt OccurredAt
}

func BuildMemberRegistered(member Member, occurredAt time.Time) MemberRegistered {
	return MemberRegistered{
		MemberID:   member.ID(),
		Name:       member.Name(),
		MemberType: member.Type(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e MemberRegistered) ToMember() Member {
	return BuildMember(e.MemberID, e.Name, e.MemberType)
}

func (e MemberRegistered) EventType() string {
	return MemberRegisteredEventType
}

func (e MemberRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e MemberRegistered) IsErrorEvent() bool {
	return false
}
