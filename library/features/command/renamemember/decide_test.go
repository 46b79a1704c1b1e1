package renamemember_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-loans-go/library/core"
	"github.com/AntonStoeckl/library-loans-go/library/features/command/renamemember"
	"github.com/AntonStoeckl/library-loans-go/testutil/helper"
)

func Test_Decide_Success_UsesLatestName(t *testing.T) {
	// arrange
	now := time.Now()
	events := core.DomainEvents{
		helper.GivenMemberRegistered(t, core.BuildMember("m-1", "Alice", core.Student), now.Add(-2*time.Hour)),
		helper.GivenMemberRenamed(t, "m-1", "Alice Smith", now.Add(-time.Hour)),
	}

	// act
	renamedBack := renamemember.Decide(events, renamemember.BuildCommand("m-1", "Alice", now))
	unchanged := renamemember.Decide(events, renamemember.BuildCommand("m-1", "Alice Smith", now))

	// assert
	assert.Equal(t, core.BuildMemberRenamed("m-1", "Alice", now), renamedBack.Event)
	assert.True(t, unchanged.IsIdempotent())
}

func Test_Decide_Error_WhenMemberUnknown(t *testing.T) {
	// act
	result := renamemember.Decide(core.DomainEvents{}, renamemember.BuildCommand("m-404", "Nobody", time.Now()))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrUnknownMember)
	assert.IsType(t, core.CatalogChangeFailed{}, result.Event)
}
