package core

import (
	"time"
)

// CatalogChangeFailedEventType is the event type identifier.
const CatalogChangeFailedEventType = "CatalogChangeFailed"

// CatalogChangeFailed reports a rejected change to the catalog or the member list.
// Exactly one of ItemID and MemberID is set. It is not recorded in the event log.
type CatalogChangeFailed struct {
	Operation   string
	ItemID      ItemIDString
	MemberID    MemberIDString
	FailureInfo string
	OccurredAt  OccurredAt
}

func BuildItemChangeFailed(operation string, itemID Identifier, failureInfo string, occurredAt time.Time) CatalogChangeFailed {
	return CatalogChangeFailed{
		Operation:   operation,
		ItemID:      itemID.Code(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func BuildMemberChangeFailed(operation string, memberID string, failureInfo string, occurredAt time.Time) CatalogChangeFailed {
	return CatalogChangeFailed{
		Operation:   operation,
		MemberID:    memberID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e CatalogChangeFailed) EventType() string {
	return CatalogChangeFailedEventType
}

func (e CatalogChangeFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e CatalogChangeFailed) IsErrorEvent() bool {
	return true
}
