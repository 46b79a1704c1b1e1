package core

import (
	"time"
)

// BookCopiesAddedEventType is the event type identifier.
const BookCopiesAddedEventType = "BookCopiesAdded"

// BookCopiesAdded records additional copies of a book.
type BookCopiesAdded struct {
	ItemID     ItemIDString
	Count      int
	OccurredAt OccurredAt
}

func BuildBookCopiesAdded(itemID Identifier, count int, occurredAt time.Time) BookCopiesAdded {
	return BookCopiesAdded{
		ItemID:     itemID.Code(),
		Count:      count,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookCopiesAdded) EventType() string {
	return BookCopiesAddedEventType
}

func (e BookCopiesAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e BookCopiesAdded) IsErrorEvent() bool {
	return false
}
