// Package conversation implements the wizard's stage machine: the fixed topic
// order, and the prompt and suggestion chips shown for each stage.
package conversation

import "github.com/jonathan/resume-chat-wizard/internal/types"

// StageOrder is the fixed forward progression of the wizard. Exactly one user
// utterance advances exactly one stage; there is no branching and no skipping.
var StageOrder = []types.Stage{
	types.StageGreeting,
	types.StageProfession,
	types.StageEducation,
	types.StageExperience,
	types.StageSkills,
	types.StageAchievements,
	types.StageSummary,
	types.StageComplete,
}

// stageIndex maps each stage to its position in StageOrder.
var stageIndex = func() map[types.Stage]int {
	m := make(map[types.Stage]int, len(StageOrder))
	for i, s := range StageOrder {
		m[s] = i
	}
	return m
}()

// Next returns the stage immediately following the given stage. The terminal
// stage maps to itself, and an unknown or corrupted stage value (for example
// deserialized from stale storage) fails closed to the terminal stage rather
// than panicking into the caller.
func Next(stage types.Stage) types.Stage {
	idx, ok := stageIndex[stage]
	if !ok {
		return types.StageComplete
	}
	if idx+1 >= len(StageOrder) {
		return types.StageComplete
	}
	return StageOrder[idx+1]
}

// IsTerminal reports whether the stage is the terminal stage. Unknown stage
// values are treated as terminal, consistent with Next.
func IsTerminal(stage types.Stage) bool {
	if _, ok := stageIndex[stage]; !ok {
		return true
	}
	return stage == types.StageComplete
}

// stagePrompts holds the single prompt template per stage. Prompts are static:
// no randomization, no personalization beyond the stage itself.
var stagePrompts = map[types.Stage]string{
	types.StageGreeting:     "Hi! I'm your resume assistant. I'll ask you a few questions and build your resume as we go. Ready to get started?",
	types.StageProfession:   "Great! First, what do you do professionally? Tell me about your field or job title.",
	types.StageEducation:    "Thanks! Now, what's your educational background? Mention your degree, field of study, and school.",
	types.StageExperience:   "Got it. Tell me about your work experience: roles you've held and where you've worked.",
	types.StageSkills:       "What are your key skills? List the technologies and abilities you want on your resume.",
	types.StageAchievements: "Almost there! What accomplishments are you proud of? Think of things you led, improved, or earned.",
	types.StageSummary:      "Last one: describe yourself in a sentence or two. This becomes your professional summary.",
	types.StageComplete:     "That's everything I need! Use auto-fill to send your answers to the resume form, or keep chatting if you'd like.",
}

// stageSuggestions holds the fixed suggestion chips per stage, 3-6 each.
var stageSuggestions = map[types.Stage][]string{
	types.StageGreeting: {
		"Yes, let's go!",
		"Sure, I'm ready",
		"What do you need from me?",
	},
	types.StageProfession: {
		"I'm a software engineer",
		"I work in marketing",
		"I'm in sales",
		"I work in healthcare",
		"I work in finance",
	},
	types.StageEducation: {
		"Bachelor's degree in Computer Science",
		"Master's in Business Administration",
		"PhD in Engineering",
		"High school diploma",
	},
	types.StageExperience: {
		"Software engineer at Google",
		"Manager at a startup",
		"Analyst at a bank",
		"I'm just starting out",
	},
	types.StageSkills: {
		"JavaScript, React, and Python",
		"SQL and data analysis",
		"Leadership and communication",
		"Project management",
	},
	types.StageAchievements: {
		"Led a team project",
		"Increased sales revenue",
		"Graduated with honors",
		"Improved a key process",
	},
	types.StageSummary: {
		"Dedicated professional with a passion for results",
		"Creative problem solver who loves a challenge",
		"Team player focused on continuous improvement",
	},
	types.StageComplete: {
		"Auto-fill my resume",
		"Start over",
		"Show me what you collected",
	},
}

// PromptFor returns the prompt template for a stage. Unknown stages get the
// terminal prompt.
func PromptFor(stage types.Stage) string {
	if prompt, ok := stagePrompts[stage]; ok {
		return prompt
	}
	return stagePrompts[types.StageComplete]
}

// SuggestionsFor returns the fixed suggestion chips for a stage. The returned
// slice is a copy; callers may not mutate the table through it.
func SuggestionsFor(stage types.Stage) []string {
	suggestions, ok := stageSuggestions[stage]
	if !ok {
		suggestions = stageSuggestions[types.StageComplete]
	}
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}
