package types

// FormEducation is one education row in the flat form-data shape consumed by
// the resume form.
type FormEducation struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Description string `json:"description"`
}

// FormExperience is one experience row in the flat form-data shape. The
// Responsibilities and Achievements fields carry fixed placeholder prose: the
// extractor only captures structured facts, never sentences, so the form gets
// editable seed text instead of empty boxes.
type FormExperience struct {
	Position         string `json:"position"`
	Company          string `json:"company"`
	Duration         string `json:"duration"`
	Responsibilities string `json:"responsibilities"`
	Achievements     string `json:"achievements"`
}

// FormData is the flat field set handed to the external resume form on
// auto-fill. Fields whose source state is unset are omitted entirely.
type FormData struct {
	Profession   string           `json:"profession,omitempty"`
	Summary      string           `json:"summary,omitempty"`
	Education    []FormEducation  `json:"education,omitempty"`
	Experience   []FormExperience `json:"experience,omitempty"`
	Skills       string           `json:"skills,omitempty"`
	Achievements string           `json:"achievements,omitempty"`
}
