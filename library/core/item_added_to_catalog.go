package core

import (
	"fmt"
	"time"
)

// ItemAddedToCatalogEventType is the event type identifier.
const ItemAddedToCatalogEventType = "ItemAddedToCatalog"

// ItemAddedToCatalog records a new book or journal. Kind decides which of the optional fields are set.
type ItemAddedToCatalog struct {
	ItemID     ItemIDString
	Kind       ItemKind
	Title      string
	Author     string
	Copies     int
	Volume     int
	Issue      int
	OccurredAt OccurredAt
}

// BuildItemAddedToCatalog creates the event for the given item.
func BuildItemAddedToCatalog(item CatalogItem, occurredAt time.Time) ItemAddedToCatalog {
	event := ItemAddedToCatalog{
		ItemID:     item.Identifier().Code(),
		Kind:       item.Kind(),
		Title:      item.Title(),
		OccurredAt: ToOccurredAt(occurredAt),
	}

	switch it := item.(type) {
	case *Book:
		event.Author = it.Author()
		event.Copies = it.Copies()
	case *Journal:
		event.Volume = it.Volume()
		event.Issue = it.Issue()
	}

	return event
}

// ToCatalogItem rebuilds the item the event describes, available and with the recorded copies.
func (e ItemAddedToCatalog) ToCatalogItem() (CatalogItem, error) {
	identifier, err := NewIdentifier(e.ItemID)
	if err != nil {
		return nil, err
	}

	switch e.Kind {
	case KindBook:
		return NewBookWithCopies(e.Title, identifier, e.Author, e.Copies), nil
	case KindJournal:
		return NewJournal(e.Title, identifier, e.Volume, e.Issue), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemKind, e.Kind)
	}
}

func (e ItemAddedToCatalog) EventType() string {
	return ItemAddedToCatalogEventType
}

func (e ItemAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e ItemAddedToCatalog) IsErrorEvent() bool {
	return false
}
