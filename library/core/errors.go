package core

import "errors"

var (
	// ErrInvalidIdentifier is returned for catalog codes that are not 13 digits after normalization.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrItemNotFound is returned when an item is returned that has no active loan.
	ErrItemNotFound = errors.New("item not found among active loans")

	// ErrInvalidLoanPeriod is returned when a loan would end before it starts.
	ErrInvalidLoanPeriod = errors.New("invalid loan period, due date is before loan date")

	// ErrItemAlreadyLent signals that an item is checked out. The loan manager reports it as a
	// non-error outcome.
	ErrItemAlreadyLent = errors.New("item is already checked out")

	ErrUnknownItem           = errors.New("item is not in the catalog")
	ErrUnknownMember         = errors.New("member is not registered")
	ErrDuplicateIdentifier   = errors.New("an item with this identifier is already in the catalog")
	ErrDuplicateMember       = errors.New("a member with this id is already registered")
	ErrNotABook              = errors.New("item is not a book")
	ErrInvalidCopyCount      = errors.New("copy count must be at least 1")
	ErrUnknownMemberType     = errors.New("unknown member type")
	ErrNegativeFineRate      = errors.New("fine rate must not be negative")
	ErrUnknownItemKind       = errors.New("unknown item kind")
	ErrLoanInvariantViolated = errors.New("loan invariant violated")
)
