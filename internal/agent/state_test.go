package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStateDefaults(t *testing.T) {
	state := NewState(DialectKhaleeji)

	assert.Equal(t, DialectKhaleeji, state.Dialect)
	assert.Equal(t, StageGreeting, state.Stage)
	assert.Empty(t, state.ShownProperties)
	assert.Zero(t, state.QuestionFlowIndex)
}

func TestNewStateUnknownDialectFallsBack(t *testing.T) {
	state := NewState(Dialect("klingon"))
	assert.Equal(t, DialectEgyptian, state.Dialect)
}

func TestNormalizeRepairsCorruptState(t *testing.T) {
	state := NewState(DialectEgyptian)
	state.Stage = Stage("negotiating_hard")
	state.ShownProperties = nil
	state.UsedSalesArguments = nil
	state.QuestionFlowIndex = 99
	state.SelectedPropertyIndex = 7

	state.Normalize()

	assert.Equal(t, StageGreeting, state.Stage)
	assert.NotNil(t, state.ShownProperties)
	assert.NotNil(t, state.UsedSalesArguments)
	assert.Equal(t, len(questionFlow), state.QuestionFlowIndex)
	assert.Equal(t, 0, state.SelectedPropertyIndex)
}

func TestNormalizeKeepsValidState(t *testing.T) {
	state := NewState(DialectMSA)
	state.Stage = StageSalesPitch
	state.QuestionFlowIndex = 3
	state.SelectedPropertyIndex = 1

	state.Normalize()

	assert.Equal(t, StageSalesPitch, state.Stage)
	assert.Equal(t, 3, state.QuestionFlowIndex)
	assert.Equal(t, 1, state.SelectedPropertyIndex)
}

func TestMarkShownDeduplicates(t *testing.T) {
	state := NewState(DialectEgyptian)
	state.markShown(5)
	state.markShown(5)
	state.markShown(7)

	assert.Equal(t, []int64{5, 7}, state.ShownProperties)
	assert.True(t, state.hasShown(5))
	assert.False(t, state.hasShown(9))
}
