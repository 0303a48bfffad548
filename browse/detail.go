package browse

import (
	"sort"

	"github.com/mbolis/survei-haji/model"
	"github.com/mbolis/survei-haji/score"
)

// Detail is one entry with its answers labelled by the current question
// texts, for the admin detail screen.
type Detail struct {
	Entry
	Sections     []SectionDetail `json:"sections"`
	Improvements []string        `json:"improvementLabels"`
}

type SectionDetail struct {
	Key        string         `json:"key"`
	Code       string         `json:"code"`
	Title      string         `json:"title"`
	Index      float64        `json:"index"`
	Answers    []AnswerDetail `json:"answers"`
	Suggestion string         `json:"suggestion,omitempty"`
}

type AnswerDetail struct {
	Key   string `json:"key"`
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// NewDetail labels sub against cfg. Only answered sections are listed;
// answer keys no longer configured keep their raw key as text.
func NewDetail(sub model.Submission, cfg model.QuestionConfig) Detail {
	d := Detail{
		Entry:        Entry{Submission: sub, Indices: score.Indices(sub, cfg)},
		Sections:     []SectionDetail{},
		Improvements: []string{},
	}

	for _, key := range sub.Improvements.Sorted(cfg) {
		d.Improvements = append(d.Improvements, cfg.ImprovementLabel(key))
	}

	for _, s := range cfg.Sections {
		group, ok := sub.Answers[s.Key]
		if !ok || len(group) == 0 {
			continue
		}

		sd := SectionDetail{
			Key:        s.Key,
			Code:       s.Code,
			Title:      s.Title,
			Index:      d.Indices[s.Key],
			Suggestion: sub.Suggestions[s.Key],
		}
		seen := map[string]bool{}
		for _, q := range s.Questions {
			if v, ok := group[q.Key]; ok {
				sd.Answers = append(sd.Answers, AnswerDetail{q.Key, q.Text, v})
				seen[q.Key] = true
			}
		}

		var extra []string
		for key := range group {
			if !seen[key] {
				extra = append(extra, key)
			}
		}
		sort.Strings(extra)
		for _, key := range extra {
			sd.Answers = append(sd.Answers, AnswerDetail{key, key, group[key]})
		}

		d.Sections = append(d.Sections, sd)
	}
	return d
}
