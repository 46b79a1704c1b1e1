package registermember_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-loans-go/library/core"
	"github.com/AntonStoeckl/library-loans-go/library/features/command/registermember"
	"github.com/AntonStoeckl/library-loans-go/testutil/helper"
)

func Test_Decide_Success_WhenIDIsFree(t *testing.T) {
	// arrange
	now := time.Now()
	alice := core.BuildMember("m-1", "Alice", core.Student)

	// act
	result := registermember.Decide(core.DomainEvents{}, registermember.BuildCommand(alice, now))

	// assert
	assert.True(t, result.HasEventToAppend())
	assert.Equal(t, core.BuildMemberRegistered(alice, now), result.Event)
}

func Test_Decide_Idempotent_WhenSameMemberRegisteredAgain(t *testing.T) {
	// arrange
	now := time.Now()
	alice := core.BuildMember("m-1", "Alice", core.Student)
	events := core.DomainEvents{helper.GivenMemberRegistered(t, alice, now.Add(-time.Hour))}

	// act
	result := registermember.Decide(events, registermember.BuildCommand(alice, now))

	// assert
	assert.True(t, result.IsIdempotent())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_WhenIDTakenByAnotherMember(t *testing.T) {
	// arrange
	now := time.Now()
	events := core.DomainEvents{
		helper.GivenMemberRegistered(t, core.BuildMember("m-1", "Alice", core.Student), now.Add(-time.Hour)),
	}

	// act
	result := registermember.Decide(events, registermember.BuildCommand(core.BuildMember("m-1", "Bob", core.Guest), now))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrDuplicateMember)
}
