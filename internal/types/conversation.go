// Package types provides type definitions for structured data used throughout the resume-chat-wizard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Stage identifies the topic the wizard is currently collecting.
type Stage string

// Conversation stages in their fixed forward order.
const (
	StageGreeting     Stage = "greeting"
	StageProfession   Stage = "profession"
	StageEducation    Stage = "education"
	StageExperience   Stage = "experience"
	StageSkills       Stage = "skills"
	StageAchievements Stage = "achievements"
	StageSummary      Stage = "summary"
	StageComplete     Stage = "complete"
)

// Profession category values produced by the profession extractor.
const (
	ProfessionSoftwareEngineer       = "software_engineer"
	ProfessionMarketingManager       = "marketing_manager"
	ProfessionSalesProfessional      = "sales_professional"
	ProfessionHealthcareProfessional = "healthcare_professional"
	ProfessionFinanceProfessional    = "finance_professional"
)

// Education holds the structured education facts collected during the
// education stage. Each sub-field is independently optional.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// IsZero reports whether no education sub-field has been populated.
func (e Education) IsZero() bool {
	return e.Degree == "" && e.Field == "" && e.Institution == ""
}

// ExperienceEntry is one work-history item assembled by the experience extractor.
type ExperienceEntry struct {
	Position string `json:"position"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

// ConversationState is the accumulator for one chat session. It is owned by
// the session and advances monotonically through the stage order; fields are
// only ever added to, never cleared, by successive extraction patches.
type ConversationState struct {
	Stage        Stage             `json:"stage"`
	Profession   string            `json:"profession,omitempty"`
	Education    Education         `json:"education,omitempty"`
	Experience   []ExperienceEntry `json:"experience,omitempty"`
	Skills       []string          `json:"skills,omitempty"`
	Achievements []string          `json:"achievements,omitempty"`
	Summary      string            `json:"summary,omitempty"`
}

// ExtractionPatch is the transient output of one extraction call: the fields
// the current turn's text matched, and nothing else. It never carries a stage.
type ExtractionPatch struct {
	Profession   string            `json:"profession,omitempty"`
	Education    Education         `json:"education,omitempty"`
	Experience   []ExperienceEntry `json:"experience,omitempty"`
	Skills       []string          `json:"skills,omitempty"`
	Achievements []string          `json:"achievements,omitempty"`
	Summary      string            `json:"summary,omitempty"`
}

// IsZero reports whether the patch extracted nothing.
func (p ExtractionPatch) IsZero() bool {
	return p.Profession == "" &&
		p.Education.IsZero() &&
		len(p.Experience) == 0 &&
		len(p.Skills) == 0 &&
		len(p.Achievements) == 0 &&
		p.Summary == ""
}
