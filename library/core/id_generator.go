package core

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator supplies ids for members and loans.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random UUIDv4 strings.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// ShortIDGenerator generates the first 8 characters of a random UUID.
// Collisions are possible and not detected here; the ledger rejects duplicate member ids.
type ShortIDGenerator struct{}

func (ShortIDGenerator) NewID() string {
	return uuid.NewString()[:8]
}

// SequenceGenerator generates prefix1, prefix2, ... and is safe for concurrent use.
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	return g.prefix + strconv.FormatUint(g.next.Add(1), 10)
}
