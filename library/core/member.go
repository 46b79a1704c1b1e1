package core

import (
	"fmt"
	"strings"
)

// MemberType determines the fine rate of a member.
type MemberType string

const (
	Student MemberType = "STUDENT"
	Faculty MemberType = "FACULTY"
	Guest   MemberType = "GUEST"
)

// ParseMemberType accepts the member type names case-insensitively.
func ParseMemberType(s string) (MemberType, error) {
	switch t := MemberType(strings.ToUpper(strings.TrimSpace(s))); t {
	case Student, Faculty, Guest:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMemberType, s)
	}
}

func (t MemberType) String() string {
	return string(t)
}

// Member is a party that can hold loans. It is a value; Rename returns the renamed member.
type Member struct {
	id         string
	name       string
	memberType MemberType
}

// NewMember creates a member with an id from the generator.
func NewMember(ids IDGenerator, name string, memberType MemberType) Member {
	return BuildMember(ids.NewID(), name, memberType)
}

// BuildMember creates a member with a known id, e.g. when replaying MemberRegistered.
func BuildMember(id string, name string, memberType MemberType) Member {
	return Member{id: id, name: name, memberType: memberType}
}

func (m Member) ID() string {
	return m.id
}

func (m Member) Name() string {
	return m.name
}

func (m Member) Type() MemberType {
	return m.memberType
}

func (m Member) Rename(name string) Member {
	m.name = name
	return m
}

func (m Member) Details() string {
	return fmt.Sprintf("Member: %s (ID: %s) - Type: %s", m.name, m.id, m.memberType)
}
