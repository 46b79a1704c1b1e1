package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-loans-go/library/core"
)

var fixedNow = time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

func Test_NewLoan_RejectsDueDateBeforeLoanDate(t *testing.T) {
	// act
	_, err := core.NewLoan("loan-1", core.MustIdentifier("9780321356680"), "m-1", fixedNow, fixedNow.AddDate(0, 0, -1))

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidLoanPeriod)
}

func Test_NewLoan_SameDayIsValid(t *testing.T) {
	// act
	loan, err := core.NewLoan("loan-1", core.MustIdentifier("9780321356680"), "m-1", fixedNow, fixedNow.Add(time.Hour))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.LoanActive, loan.Status())
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), loan.LoanDate())
	assert.Equal(t, loan.LoanDate(), loan.DueDate())
}

func Test_Loan_MarkReturned_DoesNotMutateReceiver(t *testing.T) {
	// arrange
	loan, err := core.NewLoan("loan-1", core.MustIdentifier("9780321356680"), "m-1", fixedNow, fixedNow.AddDate(0, 0, 14))
	require.NoError(t, err)

	// act
	returned := loan.MarkReturned()

	// assert
	assert.Equal(t, core.LoanActive, loan.Status())
	assert.Equal(t, core.LoanReturned, returned.Status())
	assert.Equal(t, loan.ID(), returned.ID())
	assert.Equal(t, loan.DueDate(), returned.DueDate())
}

func Test_Loan_StatusAt_DerivesOverdue(t *testing.T) {
	// arrange
	loan, err := core.NewLoan("loan-1", core.MustIdentifier("9780321356680"), "m-1", fixedNow.AddDate(0, 0, -20), fixedNow.AddDate(0, 0, -6))
	require.NoError(t, err)

	// assert
	assert.Equal(t, 6, loan.DaysOverdue(fixedNow))
	assert.True(t, loan.IsOverdue(fixedNow))
	assert.Equal(t, core.LoanOverdue, loan.StatusAt(fixedNow))
	assert.Equal(t, core.LoanActive, loan.Status())
	assert.Equal(t, core.LoanReturned, loan.MarkReturned().StatusAt(fixedNow))
	assert.Equal(t, 0, loan.DaysOverdue(fixedNow.AddDate(0, 0, -10)))
}

func Test_ItemReturnedByMember_DaysOverdue(t *testing.T) {
	// arrange
	loan, err := core.NewLoan("loan-1", core.MustIdentifier("9780321356680"), "m-1", fixedNow.AddDate(0, 0, -20), fixedNow.AddDate(0, 0, -6))
	require.NoError(t, err)

	// act
	event := core.BuildItemReturnedByMember(loan, fixedNow)

	// assert
	assert.Equal(t, 6, event.DaysOverdue())
}

func Test_DaysBetween_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2025, time.March, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 2, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, core.DaysBetween(from, to))
	assert.Equal(t, -1, core.DaysBetween(to, from))
}
