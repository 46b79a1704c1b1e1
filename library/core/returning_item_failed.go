package core

import (
	"time"
)

// ReturningItemFailedEventType is the event type identifier.
const ReturningItemFailedEventType = "ReturningItemFailed"

// ReturningItemFailed reports a rejected return. It is not recorded in the event log.
type ReturningItemFailed struct {
	ItemID      ItemIDString
	FailureInfo string
	OccurredAt  OccurredAt
}

func BuildReturningItemFailed(itemID Identifier, failureInfo string, occurredAt time.Time) ReturningItemFailed {
	return ReturningItemFailed{
		ItemID:      itemID.Code(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e ReturningItemFailed) EventType() string {
	return ReturningItemFailedEventType
}

func (e ReturningItemFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e ReturningItemFailed) IsErrorEvent() bool {
	return true
}
