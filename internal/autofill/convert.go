// Package autofill converts an accumulated conversation state into the flat
// field set the resume form consumes, with an optional model-backed
// enhancement pass layered on top of the deterministic converter.
package autofill

import (
	"strings"

	"github.com/jonathan/resume-chat-wizard/internal/types"
)

// Placeholder prose for fields the extractor cannot capture. The wizard
// collects structured facts, not sentences, so the form receives editable
// seed text.
const (
	educationNote              = "Relevant coursework and academic projects"
	responsibilityPlaceholder  = "Key responsibilities and contributions in this role"
	accomplishmentsPlaceholder = "Notable accomplishments and measurable impact"
)

// ToFormData flattens the state into form fields. Fields whose source state is
// unset are omitted entirely; there are no empty-string placeholders at the
// top level. Calling this before the terminal stage is legal and simply
// reflects partial data.
func ToFormData(state types.ConversationState) types.FormData {
	var form types.FormData

	form.Profession = state.Profession
	form.Summary = state.Summary

	if !state.Education.IsZero() {
		form.Education = []types.FormEducation{{
			Degree:      state.Education.Degree,
			Field:       state.Education.Field,
			Institution: state.Education.Institution,
			Description: educationNote,
		}}
	}

	if len(state.Experience) > 0 {
		form.Experience = make([]types.FormExperience, 0, len(state.Experience))
		for _, entry := range state.Experience {
			form.Experience = append(form.Experience, types.FormExperience{
				Position:         entry.Position,
				Company:          entry.Company,
				Duration:         entry.Duration,
				Responsibilities: responsibilityPlaceholder,
				Achievements:     accomplishmentsPlaceholder,
			})
		}
	}

	if len(state.Skills) > 0 {
		form.Skills = strings.Join(state.Skills, ", ")
	}
	if len(state.Achievements) > 0 {
		form.Achievements = strings.Join(state.Achievements, "\n")
	}

	return form
}
