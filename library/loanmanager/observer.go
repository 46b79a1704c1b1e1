package loanmanager

import (
	"context"

	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Observer receives the outcome events of the Manager's operations.
//
// Observe is called after the Manager released its lock, in the order the events were produced.
// It may call back into the Manager.
type Observer interface {
	Observe(ctx context.Context, event core.DomainEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, event core.DomainEvent)

func (f ObserverFunc) Observe(ctx context.Context, event core.DomainEvent) {
	f(ctx, event)
}

func (m *Manager) notify(ctx context.Context, events core.DomainEvents) {
	for _, event := range events {
		for _, observer := range m.observers {
			observer.Observe(ctx, event)
		}
	}
}
