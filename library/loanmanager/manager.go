package loanmanager

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
	"github.com/AntonStoeckl/library-loans-go/library/core"
	"github.com/AntonStoeckl/library-loans-go/library/shell"
)

// EventStore defines the interface needed by the Manager for event store operations.
type EventStore interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		storableEvents ...eventstore.StorableEvent,
	) error
}

// ReturnReceipt is the result of a successful return.
// Fine is zero unless the item came back after its due date.
type ReturnReceipt struct {
	Loan        core.Loan
	DaysOverdue int
	Fine        decimal.Decimal
}

func (r ReturnReceipt) IsLate() bool {
	return r.DaysOverdue > 0
}

// OverdueLoan is an active loan past its due date, with the fine it would cost if returned today.
type OverdueLoan struct {
	Loan        core.Loan
	Member      core.Member
	DaysOverdue int
	AccruedFine decimal.Decimal
}

// Manager owns the catalog, the members and the loans.
type Manager struct {
	store          EventStore
	clock          core.Clock
	ids            core.IDGenerator
	loanPeriodDays int
	finePolicy     core.FinePolicy
	observers      []Observer
	retryOptions   []shell.RetryOption

	logger           eventstore.Logger
	contextualLogger eventstore.ContextualLogger
	metricsCollector eventstore.MetricsCollector
	tracingCollector eventstore.TracingCollector

	mu    sync.RWMutex
	model *readModel
}

// New creates a Manager on top of the store and replays the history the store already holds.
func New(store EventStore, options ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrNilEventStore
	}

	m := &Manager{
		store:          store,
		clock:          core.SystemClock{},
		ids:            core.UUIDGenerator{},
		loanPeriodDays: int(core.DefaultLoanPeriod / (24 * time.Hour)),
		finePolicy:     core.DefaultFinePolicy(),
		model:          newReadModel(),
	}

	for _, option := range options {
		if err := option(m); err != nil {
			return nil, err
		}
	}

	ctx := context.Background()

	m.mu.Lock()
	replayed, err := m.catchUp(ctx)
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}

	m.logInfo(ctx, logMsgReplayed, logAttrEventCount, replayed)

	return m, nil
}

// CalculateFine returns the fine for daysOverdue under the Manager's fine policy.
func (m *Manager) CalculateFine(daysOverdue int, memberType core.MemberType) decimal.Decimal {
	return m.finePolicy.CalculateFine(daysOverdue, memberType)
}

// Policy describes the loan period.
func (m *Manager) Policy() string {
	return fmt.Sprintf("Standard loan period is %d days.", m.loanPeriodDays)
}

// LoanPeriodDays returns the number of days between loan date and due date of LoanItem.
func (m *Manager) LoanPeriodDays() int {
	return m.loanPeriodDays
}

// Today is the current civil date of the Manager's clock.
func (m *Manager) Today() time.Time {
	return core.CivilDate(m.clock.Now())
}

// Refresh folds the events other writers appended to the shared store since this Manager last looked.
//
// Queries serve the read model as of the last mutation, New or Refresh. They never touch the store.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	caughtUp, err := m.catchUp(ctx)
	m.mu.Unlock()

	if err != nil {
		m.logError(ctx, logMsgRefreshFailed, logAttrError, err.Error())
		return err
	}

	m.logInfo(ctx, logMsgReplayed, logAttrEventCount, caughtUp)

	return nil
}
