// Package survey validates and persists survey submissions.
package survey

import "github.com/mbolis/survei-haji/model"

// Form is the payload a respondent submits at the end of the wizard.
type Form struct {
	Respondent      model.Respondent             `json:"respondent"`
	Answers         map[string]model.AnswerGroup `json:"answers"`
	Suggestions     map[string]string            `json:"suggestions,omitempty"`
	SelfDeclaration bool                         `json:"selfDeclaration"`
	Improvements    model.Improvements           `json:"improvements"`
	Signature       string                       `json:"signature"`
}

// Submission builds the record to persist. Only configured sections and
// questions are kept; the configured question count of every answered
// section is snapshotted.
func (f Form) Submission(cfg model.QuestionConfig) model.Submission {
	sub := model.Submission{
		Respondent:      f.Respondent,
		Answers:         map[string]model.AnswerGroup{},
		SelfDeclaration: f.SelfDeclaration,
		Improvements:    f.Improvements,
		Signature:       f.Signature,
		QuestionCounts:  map[string]int{},
	}
	for _, s := range cfg.Sections {
		g := f.Answers[s.Key]
		if len(g) == 0 {
			continue
		}
		kept := model.AnswerGroup{}
		for _, q := range s.Questions {
			if v, ok := g[q.Key]; ok {
				kept[q.Key] = v
			}
		}
		if len(kept) == 0 {
			continue
		}
		sub.Answers[s.Key] = kept
		sub.QuestionCounts[s.Key] = len(s.Questions)

		if text := f.Suggestions[s.Key]; text != "" {
			if sub.Suggestions == nil {
				sub.Suggestions = map[string]string{}
			}
			sub.Suggestions[s.Key] = text
		}
	}
	return sub
}
