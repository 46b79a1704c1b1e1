package eventstore

import (
	"errors"
)

// ErrConcurrencyConflict is returned by Append when events matching the filter were appended after the
// caller's Query.
var ErrConcurrencyConflict = errors.New("concurrency conflict, the event stream has moved on")

// ErrEmptyEventsSupplied is returned by Append when it is called without any events.
var ErrEmptyEventsSupplied = errors.New("no events supplied to append")

// MaxSequenceNumberUint is the highest sequence number found for a "dynamic event stream".
type MaxSequenceNumberUint = uint
