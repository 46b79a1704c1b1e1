package helper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-loans-go/eventstore/memengine"
)

// NewMemoryEventStore returns an empty in-memory event store.
func NewMemoryEventStore(t testing.TB, options ...memengine.Option) *memengine.EventStore {
	t.Helper()

	store, err := memengine.NewEventStore(options...)
	require.NoError(t, err, "error in arranging test data")

	return store
}
