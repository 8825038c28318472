package extraction

import (
	"strings"

	"github.com/jonathan/resume-chat-wizard/internal/types"
)

// Extract runs the stage-specific rule family against the utterance and
// returns the fields it matched. Unmatched text yields a zero patch; that is
// the normal "nothing extracted" case, not an error. Extract performs no I/O
// and never fails.
func Extract(text string, stage types.Stage) types.ExtractionPatch {
	switch stage {
	case types.StageProfession:
		return extractProfession(text)
	case types.StageEducation:
		return extractEducation(text)
	case types.StageExperience:
		return extractExperience(text)
	case types.StageSkills:
		return extractSkills(text)
	case types.StageAchievements:
		return extractAchievements(text)
	case types.StageSummary:
		return extractSummary(text)
	default:
		// greeting, complete, and unknown stages extract nothing.
		return types.ExtractionPatch{}
	}
}

func extractProfession(text string) types.ExtractionPatch {
	var patch types.ExtractionPatch
	if profession, ok := firstMatch(text, professionRules); ok {
		patch.Profession = profession
	}
	return patch
}

// extractEducation extracts degree, field, and institution independently; all
// three can populate from a single turn.
func extractEducation(text string) types.ExtractionPatch {
	var patch types.ExtractionPatch
	if degree, ok := firstMatch(text, degreeRules); ok {
		patch.Education.Degree = degree
	}
	if field, ok := firstMatch(text, fieldRules); ok {
		patch.Education.Field = field
	}
	patch.Education.Institution = matchInstitution(text)
	return patch
}

// extractExperience collects matched titles and companies, then zips them
// positionally into entries. A title without a company gets the literal
// default company, and vice versa; duration is always the literal default.
func extractExperience(text string) types.ExtractionPatch {
	titles := allMatches(text, titleRules)
	companies := allMatches(text, companyRules)
	if len(titles) == 0 && len(companies) == 0 {
		return types.ExtractionPatch{}
	}

	n := len(titles)
	if len(companies) > n {
		n = len(companies)
	}

	entries := make([]types.ExperienceEntry, 0, n)
	for i := 0; i < n; i++ {
		entry := types.ExperienceEntry{
			Position: defaultPosition,
			Company:  defaultCompany,
			Duration: defaultDuration,
		}
		if i < len(titles) {
			entry.Position = titles[i]
		}
		if i < len(companies) {
			entry.Company = companies[i]
		}
		entries = append(entries, entry)
	}
	return types.ExtractionPatch{Experience: entries}
}

func extractSkills(text string) types.ExtractionPatch {
	return types.ExtractionPatch{Skills: allMatches(text, skillRules)}
}

func extractAchievements(text string) types.ExtractionPatch {
	return types.ExtractionPatch{Achievements: allMatches(text, achievementRules)}
}

// extractSummary takes the utterance itself as the professional summary; the
// summary stage collects prose, not keywords.
func extractSummary(text string) types.ExtractionPatch {
	return types.ExtractionPatch{Summary: strings.TrimSpace(text)}
}
