package model

import "time"

// AnonymousName is displayed in place of a missing respondent name.
const AnonymousName = "Anonim"

// Submission is one immutable survey record. Once created it is never
// mutated, only deleted.
type Submission struct {
	ID              string                 `json:"id"`
	CreatedAt       time.Time              `json:"createdAt"`
	Respondent      Respondent             `json:"respondent"`
	Answers         map[string]AnswerGroup `json:"answers"`
	Suggestions     map[string]string      `json:"suggestions,omitempty"`
	SelfDeclaration bool                   `json:"selfDeclaration"`
	Improvements    Improvements           `json:"improvements"`
	Signature       string                 `json:"signature"`
	// QuestionCounts snapshots the configured question count of every
	// answered section at write time.
	QuestionCounts map[string]int `json:"questionCounts,omitempty"`
}

// AnswerGroup maps question keys to Likert values for one section.
type AnswerGroup map[string]int

type Respondent struct {
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Occupation string `json:"occupation" validate:"required,option=occupation"`
	AgeBracket string `json:"ageBracket" validate:"required,option=age"`
	Gender     string `json:"gender" validate:"required,option=gender"`
	Education  string `json:"education" validate:"required,option=education"`
}

// DisplayName is the respondent name, or AnonymousName when absent.
func (r Respondent) DisplayName() string {
	if r.Name == "" {
		return AnonymousName
	}
	return r.Name
}

// Sum adds every answer of the group.
func (g AnswerGroup) Sum() int {
	sum := 0
	for _, v := range g {
		sum += v
	}
	return sum
}

// HasSection reports whether the submission holds answers for a section.
func (s Submission) HasSection(section string) bool {
	g, ok := s.Answers[section]
	return ok && len(g) > 0
}
