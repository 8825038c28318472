package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-chat-wizard/internal/types"
)

func TestMergePatch_ListsAreAppended(t *testing.T) {
	entryA := types.ExperienceEntry{Position: "Analyst", Company: "Company", Duration: "2-3 years"}
	entryB := types.ExperienceEntry{Position: "Manager", Company: "Google", Duration: "2-3 years"}

	state := types.ConversationState{Stage: types.StageExperience, Experience: []types.ExperienceEntry{entryA}}
	patch := types.ExtractionPatch{Experience: []types.ExperienceEntry{entryB}}

	merged := MergePatch(state, patch)
	assert.Equal(t, []types.ExperienceEntry{entryA, entryB}, merged.Experience)
}

func TestMergePatch_EmptyPatchNeverClears(t *testing.T) {
	state := types.ConversationState{
		Stage:      types.StageEducation,
		Profession: types.ProfessionSoftwareEngineer,
		Skills:     []string{"Python"},
		Summary:    "Seasoned engineer.",
	}

	merged := MergePatch(state, types.ExtractionPatch{})

	assert.Equal(t, types.ProfessionSoftwareEngineer, merged.Profession)
	assert.Equal(t, []string{"Python"}, merged.Skills)
	assert.Equal(t, "Seasoned engineer.", merged.Summary)
}

func TestMergePatch_EducationMergesSubFieldWise(t *testing.T) {
	state := types.ConversationState{
		Stage:     types.StageEducation,
		Education: types.Education{Degree: "Bachelor's Degree", Field: "Engineering"},
	}
	patch := types.ExtractionPatch{
		Education: types.Education{Field: "Computer Science", Institution: "Stanford University"},
	}

	merged := MergePatch(state, patch)

	assert.Equal(t, "Bachelor's Degree", merged.Education.Degree)
	assert.Equal(t, "Computer Science", merged.Education.Field)
	assert.Equal(t, "Stanford University", merged.Education.Institution)
}

func TestMergePatch_ScalarOverwriteOnlyWhenNonEmpty(t *testing.T) {
	state := types.ConversationState{Profession: types.ProfessionSoftwareEngineer}

	merged := MergePatch(state, types.ExtractionPatch{Profession: ""})
	assert.Equal(t, types.ProfessionSoftwareEngineer, merged.Profession)

	merged = MergePatch(state, types.ExtractionPatch{Profession: types.ProfessionFinanceProfessional})
	assert.Equal(t, types.ProfessionFinanceProfessional, merged.Profession)
}

func TestMergePatch_DoesNotAliasInputSlices(t *testing.T) {
	state := types.ConversationState{Skills: []string{"Python"}}
	merged := MergePatch(state, types.ExtractionPatch{Skills: []string{"SQL"}})

	require.Equal(t, []string{"Python", "SQL"}, merged.Skills)
	merged.Skills[0] = "mutated"
	assert.Equal(t, []string{"Python"}, state.Skills)
}
