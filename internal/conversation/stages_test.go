package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-chat-wizard/internal/types"
)

func TestNext_MonotonicProgression(t *testing.T) {
	// Every non-terminal stage advances to exactly the next element in order.
	for i, stage := range StageOrder[:len(StageOrder)-1] {
		assert.Equal(t, StageOrder[i+1], Next(stage), "stage %s", stage)
	}
}

func TestNext_TerminalIsIdempotent(t *testing.T) {
	stage := types.StageComplete
	for i := 0; i < 5; i++ {
		stage = Next(stage)
		assert.Equal(t, types.StageComplete, stage)
	}
}

func TestNext_UnknownStageFailsClosed(t *testing.T) {
	assert.Equal(t, types.StageComplete, Next(types.Stage("garbage")))
	assert.Equal(t, types.StageComplete, Next(types.Stage("")))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(types.StageComplete))
	assert.True(t, IsTerminal(types.Stage("corrupted")))
	assert.False(t, IsTerminal(types.StageGreeting))
	assert.False(t, IsTerminal(types.StageSummary))
}

func TestPromptFor_EveryStageHasPrompt(t *testing.T) {
	for _, stage := range StageOrder {
		assert.NotEmpty(t, PromptFor(stage), "stage %s", stage)
	}
	// Unknown stages get the terminal prompt rather than an empty string.
	assert.Equal(t, PromptFor(types.StageComplete), PromptFor(types.Stage("bogus")))
}

func TestSuggestionsFor_FixedChipCounts(t *testing.T) {
	for _, stage := range StageOrder {
		suggestions := SuggestionsFor(stage)
		require.NotEmpty(t, suggestions, "stage %s", stage)
		assert.GreaterOrEqual(t, len(suggestions), 3, "stage %s", stage)
		assert.LessOrEqual(t, len(suggestions), 6, "stage %s", stage)
	}
}

func TestSuggestionsFor_ReturnsCopy(t *testing.T) {
	first := SuggestionsFor(types.StageProfession)
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", SuggestionsFor(types.StageProfession)[0])
}
