package memengine

import (
	"slices"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
)

// matches reports whether the stored event is selected by the filter.
func matches(filter eventstore.Filter, ev storedEvent) bool {
	if ev.sequenceNumber <= filter.SequenceNumberHigherThan() {
		return false
	}

	if len(filter.Items()) == 0 {
		return true
	}

	for _, item := range filter.Items() {
		if matchesItem(item, ev.event) {
			return true
		}
	}

	return false
}

func matchesItem(item eventstore.FilterItem, event eventstore.StorableEvent) bool {
	if len(item.EventTypes()) > 0 && !slices.Contains(item.EventTypes(), event.EventType) {
		return false
	}

	if len(item.Predicates()) == 0 {
		return true
	}

	if item.AllPredicatesMustMatch() {
		for _, p := range item.Predicates() {
			if !matchesPredicate(p, event.PayloadJSON) {
				return false
			}
		}

		return true
	}

	for _, p := range item.Predicates() {
		if matchesPredicate(p, event.PayloadJSON) {
			return true
		}
	}

	return false
}

// matchesPredicate compares a top-level payload field with the predicate value.
func matchesPredicate(p eventstore.FilterPredicate, payloadJSON []byte) bool {
	field := jsoniter.ConfigFastest.Get(payloadJSON, p.Key())
	if field.ValueType() == jsoniter.InvalidValue || field.ValueType() == jsoniter.NilValue {
		return false
	}

	return field.ToString() == p.Val()
}
