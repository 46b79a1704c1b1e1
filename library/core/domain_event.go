package core

import (
	"time"
)

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent represents a business event that has occurred in the library.
type DomainEvent interface {
	// EventType returns the string identifier for this event type.
	EventType() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time

	// IsErrorEvent returns true if this event represents a failure that is only reported, not recorded.
	IsErrorEvent() bool
}

// ItemIDString is the normalized 13-digit code of an Identifier.
type ItemIDString = string

// MemberIDString is a member's id.
type MemberIDString = string

// LoanIDString is a loan's id.
type LoanIDString = string
