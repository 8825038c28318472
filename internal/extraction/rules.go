// Package extraction turns one free-text user utterance, tagged with the stage
// it answered, into a partial data patch. Matching is a fixed, ordered rule
// table per stage; given the same text and stage the output is always
// identical.
package extraction

import "github.com/jonathan/resume-chat-wizard/internal/types"

// keywordRule maps a set of alternative keywords to a single resulting value.
// Rules are tried in table order; for scalar targets the first matching rule
// wins and later rules for the same target are ignored.
type keywordRule struct {
	keywords []string
	value    string
}

// professionRules resolves the profession category. Table order is the
// tie-break: a text mentioning both marketing and finance resolves to
// marketing_manager because that rule appears first.
var professionRules = []keywordRule{
	{[]string{"software", "engineer", "developer"}, types.ProfessionSoftwareEngineer},
	{[]string{"marketing"}, types.ProfessionMarketingManager},
	{[]string{"sales"}, types.ProfessionSalesProfessional},
	{[]string{"health", "medical", "nurse"}, types.ProfessionHealthcareProfessional},
	{[]string{"finance", "accounting", "banking"}, types.ProfessionFinanceProfessional},
}

// degreeRules resolves the education degree level.
var degreeRules = []keywordRule{
	{[]string{"bachelor", "bachelors", "bachelor's"}, "Bachelor's Degree"},
	{[]string{"master", "masters", "master's"}, "Master's Degree"},
	{[]string{"phd", "doctorate"}, "PhD"},
	{[]string{"associate", "associates", "associate's"}, "Associate's Degree"},
	{[]string{"high school"}, "High School Diploma"},
}

// fieldRules resolves the field of study.
var fieldRules = []keywordRule{
	{[]string{"computer science", "cs"}, "Computer Science"},
	{[]string{"business", "mba"}, "Business Administration"},
	{[]string{"engineering"}, "Engineering"},
	{[]string{"marketing"}, "Marketing"},
}

// titleRules maps job-title keywords to canonical position names. Every
// matching rule appends one title; keywords are chosen to be disjoint so one
// mention produces one title.
var titleRules = []keywordRule{
	{[]string{"software engineer", "programmer"}, "Software Engineer"},
	{[]string{"developer"}, "Software Developer"},
	{[]string{"manager"}, "Manager"},
	{[]string{"analyst"}, "Analyst"},
	{[]string{"consultant"}, "Consultant"},
	{[]string{"designer"}, "Designer"},
	{[]string{"nurse"}, "Nurse"},
	{[]string{"accountant"}, "Accountant"},
	{[]string{"teacher"}, "Teacher"},
}

// companyRules recognizes a fixed set of well-known employers.
var companyRules = []keywordRule{
	{[]string{"google"}, "Google"},
	{[]string{"microsoft"}, "Microsoft"},
	{[]string{"amazon"}, "Amazon"},
	{[]string{"apple"}, "Apple"},
	{[]string{"meta", "facebook"}, "Meta"},
	{[]string{"netflix"}, "Netflix"},
	{[]string{"ibm"}, "IBM"},
	{[]string{"oracle"}, "Oracle"},
	{[]string{"tesla"}, "Tesla"},
}

// skillRules is the fixed skills vocabulary. Output order follows table order,
// not the order skills appear in the text.
var skillRules = []keywordRule{
	{[]string{"javascript", "js"}, "JavaScript"},
	{[]string{"react"}, "React"},
	{[]string{"python"}, "Python"},
	{[]string{"sql"}, "SQL"},
	{[]string{"aws"}, "AWS"},
	{[]string{"excel"}, "Excel"},
	{[]string{"leadership"}, "Leadership"},
	{[]string{"communication"}, "Communication"},
	{[]string{"project management"}, "Project Management"},
}

// achievementRules maps verb triggers to canned achievement sentences. Each
// matching rule appends its sentence once.
var achievementRules = []keywordRule{
	{[]string{"led", "lead", "manage", "managed"}, "Led cross-functional team initiatives that delivered results on schedule"},
	{[]string{"increase", "increased", "improve", "improved"}, "Increased key performance metrics through targeted process improvements"},
	{[]string{"graduate", "graduated", "honor", "honors"}, "Graduated with academic honors and recognition"},
}

// Literal defaults used when the experience zip has a title without a company,
// or a company without a title.
const (
	defaultCompany  = "Company"
	defaultPosition = "Professional"
	defaultDuration = "2-3 years"
)
