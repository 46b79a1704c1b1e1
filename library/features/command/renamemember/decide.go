package renamemember

import (
	"fmt"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Operation names the use case in failure notifications and metrics.
const Operation = "rename_member"

type state struct {
	registered  bool
	currentName string
}

// Decide renames a member.
//
//	GIVEN: a registered member
//	WHEN: RenameMember is received
//	THEN: MemberRenamed is generated
//	IDEMPOTENCY: renaming to the current name is a no-op
//	ERROR: ErrUnknownMember if the member is not registered
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.MemberID)

	if !s.registered {
		failed := core.BuildMemberChangeFailed(Operation, command.MemberID, core.ErrUnknownMember.Error(), command.OccurredAt)
		return core.ErrorDecision(failed, fmt.Errorf("%s: %w", failed.EventType(), core.ErrUnknownMember))
	}

	if s.currentName == command.Name {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.BuildMemberRenamed(command.MemberID, command.Name, command.OccurredAt))
}

func project(history core.DomainEvents, memberID string) state {
	s := state{}

	for _, event := range history {
		switch e := event.(type) {
		case core.MemberRegistered:
			if e.MemberID == memberID {
				s.registered = true
				s.currentName = e.Name
			}

		case core.MemberRenamed:
			if e.MemberID == memberID {
				s.currentName = e.Name
			}
		}
	}

	return s
}

// BuildEventFilter selects the registration and renames of the member.
func BuildEventFilter(memberID string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.MemberRegisteredEventType, core.MemberRenamedEventType).
		AndAnyPredicateOf(eventstore.P("MemberID", memberID)).
		Finalize()
}
