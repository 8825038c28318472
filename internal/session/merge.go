// Package session owns the conversation state for a chat session: merging
// extraction patches into the accumulator, advancing turns, and the in-memory
// store that maps session IDs to live conversations.
package session

import "github.com/jonathan/resume-chat-wizard/internal/types"

// MergePatch folds an extraction patch into the state and returns the result.
// The merge is additive, never destructive: scalar fields overwrite only when
// the patch supplies a non-empty value, education merges sub-field-wise, and
// list fields are appended to. The input state is not mutated; list fields are
// copied before appending so the returned state shares no backing arrays with
// the input.
func MergePatch(state types.ConversationState, patch types.ExtractionPatch) types.ConversationState {
	merged := state

	if patch.Profession != "" {
		merged.Profession = patch.Profession
	}
	if patch.Summary != "" {
		merged.Summary = patch.Summary
	}

	if patch.Education.Degree != "" {
		merged.Education.Degree = patch.Education.Degree
	}
	if patch.Education.Field != "" {
		merged.Education.Field = patch.Education.Field
	}
	if patch.Education.Institution != "" {
		merged.Education.Institution = patch.Education.Institution
	}

	if len(patch.Experience) > 0 {
		merged.Experience = appendCopy(state.Experience, patch.Experience)
	}
	if len(patch.Skills) > 0 {
		merged.Skills = appendCopy(state.Skills, patch.Skills)
	}
	if len(patch.Achievements) > 0 {
		merged.Achievements = appendCopy(state.Achievements, patch.Achievements)
	}

	return merged
}

func appendCopy[T any](existing, added []T) []T {
	out := make([]T, 0, len(existing)+len(added))
	out = append(out, existing...)
	out = append(out, added...)
	return out
}
