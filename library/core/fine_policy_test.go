package core_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-loans-go/library/core"
)

func Test_FinePolicy_CalculateFine(t *testing.T) {
	policy := core.DefaultFinePolicy()

	tests := []struct {
		name        string
		daysOverdue int
		memberType  core.MemberType
		expected    string
	}{
		{name: "student six days", daysOverdue: 6, memberType: core.Student, expected: "0.60"},
		{name: "faculty is never fined", daysOverdue: 365, memberType: core.Faculty, expected: "0.00"},
		{name: "guest four days", daysOverdue: 4, memberType: core.Guest, expected: "1.00"},
		{name: "not overdue", daysOverdue: 0, memberType: core.Guest, expected: "0.00"},
		{name: "negative days", daysOverdue: -3, memberType: core.Student, expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fine := policy.CalculateFine(tt.daysOverdue, tt.memberType)
			assert.Equal(t, tt.expected, fine.StringFixed(2))
		})
	}
}

func Test_NewFinePolicy(t *testing.T) {
	// act
	policy, err := core.NewFinePolicy(decimal.RequireFromString("0.15"), decimal.RequireFromString("0.333"))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "1.00", policy.CalculateFine(3, core.Guest).StringFixed(2))
	assert.Equal(t, "0.45", policy.CalculateFine(3, core.Student).StringFixed(2))

	_, err = core.NewFinePolicy(decimal.RequireFromString("-0.01"), decimal.Zero)
	assert.ErrorIs(t, err, core.ErrNegativeFineRate)
}
