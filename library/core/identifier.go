package core

import (
	"fmt"
	"strings"
)

const identifierLength = 13

// Identifier is a normalized 13-digit catalog code. The zero value is not valid.
// Identifiers are comparable and can be used as map keys.
type Identifier struct {
	code string
}

// NewIdentifier trims the input, strips hyphens, and requires exactly 13 ASCII digits.
func NewIdentifier(code string) (Identifier, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(code), "-", "")

	if len(normalized) != identifierLength {
		return Identifier{}, fmt.Errorf("%w: %q has %d characters, want %d", ErrInvalidIdentifier, code, len(normalized), identifierLength)
	}

	for _, r := range normalized {
		if r < '0' || r > '9' {
			return Identifier{}, fmt.Errorf("%w: %q contains non-digit %q", ErrInvalidIdentifier, code, r)
		}
	}

	return Identifier{code: normalized}, nil
}

// MustIdentifier is NewIdentifier for fixtures and demo data. It panics on invalid input.
func MustIdentifier(code string) Identifier {
	id, err := NewIdentifier(code)
	if err != nil {
		panic(err)
	}

	return id
}

// Code returns the 13 digits.
func (id Identifier) Code() string {
	return id.code
}

func (id Identifier) IsZero() bool {
	return id.code == ""
}

// String returns the display form, e.g. "ISBN: 9780321356680".
func (id Identifier) String() string {
	return "ISBN: " + id.code
}
