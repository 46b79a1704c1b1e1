package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// FineAssessedEventType is the event type identifier.
const FineAssessedEventType = "FineAssessed"

// FineAssessed reports the fine for an overdue return. Fines are informational: the event is emitted
// to observers but not recorded in the event log.
type FineAssessed struct {
	LoanID      LoanIDString
	ItemID      ItemIDString
	MemberID    MemberIDString
	MemberType  MemberType
	DaysOverdue int
	Amount      decimal.Decimal
	OccurredAt  OccurredAt
}

func BuildFineAssessed(
	returned ItemReturnedByMember,
	memberType MemberType,
	amount decimal.Decimal,
) FineAssessed {

	return FineAssessed{
		LoanID:      returned.LoanID,
		ItemID:      returned.ItemID,
		MemberID:    returned.MemberID,
		MemberType:  memberType,
		DaysOverdue: returned.DaysOverdue(),
		Amount:      amount,
		OccurredAt:  returned.OccurredAt,
	}
}

func (e FineAssessed) EventType() string {
	return FineAssessedEventType
}

func (e FineAssessed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e FineAssessed) IsErrorEvent() bool {
	return false
}
