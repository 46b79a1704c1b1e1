package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLoanPeriod is the standard loan period of 14 days.
const DefaultLoanPeriod = 14 * 24 * time.Hour

var (
	defaultStudentRate = decimal.RequireFromString("0.10")
	defaultGuestRate   = decimal.RequireFromString("0.25")
)

// FinePolicy maps member types to a per-day fine. Faculty members are never fined.
type FinePolicy struct {
	studentRate decimal.Decimal
	guestRate   decimal.Decimal
}

// DefaultFinePolicy charges students 0.10 and guests 0.25 per day.
func DefaultFinePolicy() FinePolicy {
	return FinePolicy{studentRate: defaultStudentRate, guestRate: defaultGuestRate}
}

func NewFinePolicy(studentRate decimal.Decimal, guestRate decimal.Decimal) (FinePolicy, error) {
	if studentRate.IsNegative() || guestRate.IsNegative() {
		return FinePolicy{}, fmt.Errorf("%w: student %s, guest %s", ErrNegativeFineRate, studentRate, guestRate)
	}

	return FinePolicy{studentRate: studentRate, guestRate: guestRate}, nil
}

func (p FinePolicy) RatePerDay(memberType MemberType) decimal.Decimal {
	switch memberType {
	case Student:
		return p.studentRate
	case Guest:
		return p.guestRate
	default:
		return decimal.Zero
	}
}

// CalculateFine returns daysOverdue times the member type's rate, rounded to cents.
func (p FinePolicy) CalculateFine(daysOverdue int, memberType MemberType) decimal.Decimal {
	if daysOverdue <= 0 {
		return decimal.Zero
	}

	return p.RatePerDay(memberType).Mul(decimal.NewFromInt(int64(daysOverdue))).Round(2)
}
