package session

import (
	"github.com/jonathan/resume-chat-wizard/internal/conversation"
	"github.com/jonathan/resume-chat-wizard/internal/extraction"
	"github.com/jonathan/resume-chat-wizard/internal/types"
)

// Turn is the result of processing one user utterance: the fields the text
// matched, the state after merging and advancing, and the next prompt plus
// suggestion chips to show.
type Turn struct {
	Patch       types.ExtractionPatch   `json:"patch"`
	State       types.ConversationState `json:"state"`
	Prompt      string                  `json:"prompt"`
	Suggestions []string                `json:"suggestions"`
}

// StartSession returns a fresh conversation state at the greeting stage.
func StartSession() types.ConversationState {
	return types.ConversationState{Stage: types.StageGreeting}
}

// Advance processes one user utterance to completion: extract against the
// current stage, merge the patch, move one stage forward, and look up the next
// stage's prompt and suggestions. Once the terminal stage is reached the state
// is never mutated again; further turns echo the terminal prompt.
func Advance(state types.ConversationState, userText string) Turn {
	if conversation.IsTerminal(state.Stage) {
		terminal := state
		terminal.Stage = types.StageComplete
		return Turn{
			State:       terminal,
			Prompt:      conversation.PromptFor(types.StageComplete),
			Suggestions: conversation.SuggestionsFor(types.StageComplete),
		}
	}

	patch := extraction.Extract(userText, state.Stage)
	next := MergePatch(state, patch)
	next.Stage = conversation.Next(state.Stage)

	return Turn{
		Patch:       patch,
		State:       next,
		Prompt:      conversation.PromptFor(next.Stage),
		Suggestions: conversation.SuggestionsFor(next.Stage),
	}
}
