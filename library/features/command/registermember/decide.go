package registermember

import (
	"fmt"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
	"github.com/AntonStoeckl/library-loans-go/library/core"
)

// Operation names the use case in failure notifications and metrics.
const Operation = "register_member"

// Decide registers a member.
//
//	GIVEN: a member with a generated id
//	WHEN: RegisterMember is received
//	THEN: MemberRegistered is generated
//	IDEMPOTENCY: the same member registered again with identical data is a no-op
//	ERROR: ErrDuplicateMember if the id is taken by a different member
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	member := command.Member

	for _, event := range history {
		e, ok := event.(core.MemberRegistered)
		if !ok || e.MemberID != member.ID() {
			continue
		}

		if e.Name == member.Name() && e.MemberType == member.Type() {
			return core.IdempotentDecision()
		}

		failed := core.BuildMemberChangeFailed(Operation, member.ID(), core.ErrDuplicateMember.Error(), command.OccurredAt)
		return core.ErrorDecision(failed, fmt.Errorf("%s: %w", failed.EventType(), core.ErrDuplicateMember))
	}

	return core.SuccessDecision(core.BuildMemberRegistered(member, command.OccurredAt))
}

// BuildEventFilter selects the registration of the member id.
func BuildEventFilter(memberID string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.MemberRegisteredEventType).
		AndAnyPredicateOf(eventstore.P("MemberID", memberID)).
		Finalize()
}
