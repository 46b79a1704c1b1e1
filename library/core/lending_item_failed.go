package core

import (
	"time"
)

// LendingItemFailedEventType is the event type identifier.
const LendingItemFailedEventType = "LendingItemFailed"

// LendingItemFailed reports a rejected loan. It is not recorded in the event log.
type LendingItemFailed struct {
	ItemID      ItemIDString
	MemberID    MemberIDString
	FailureInfo string
	OccurredAt  OccurredAt
}

func BuildLendingItemFailed(itemID Identifier, memberID string, failureInfo string, occurredAt time.Time) LendingItemFailed {
	return LendingItemFailed{
		ItemID:      itemID.Code(),
		MemberID:    memberID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e LendingItemFailed) EventType() string {
	return LendingItemFailedEventType
}

func (e LendingItemFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e LendingItemFailed) IsErrorEvent() bool {
	return true
}
