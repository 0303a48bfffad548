package score

import "github.com/mbolis/survei-haji/model"

// SectionIndex is the aggregate index of one section across submissions.
type SectionIndex struct {
	Section string  `json:"section"`
	Code    string  `json:"code"`
	Title   string  `json:"title"`
	Mean    float64 `json:"mean"`
	// Count is the number of submissions containing the section.
	Count int `json:"count"`
}

type QuestionAverage struct {
	Key     string  `json:"key"`
	Text    string  `json:"text"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type SectionQuestions struct {
	Section   string            `json:"section"`
	Title     string            `json:"title"`
	Questions []QuestionAverage `json:"questions"`
}

type Summary struct {
	Respondents int                `json:"respondents"`
	Indices     []SectionIndex     `json:"indices"`
	Questions   []SectionQuestions `json:"questions"`
}

// Aggregate is the arithmetic mean of per-submission indices for each
// configured section. Submissions lacking a section are left out of that
// section's mean.
func Aggregate(subs []model.Submission, cfg model.QuestionConfig) []SectionIndex {
	out := make([]SectionIndex, 0, len(cfg.Sections))
	for _, s := range cfg.Sections {
		agg := SectionIndex{Section: s.Key, Code: s.Code, Title: s.Title}
		var total float64
		for _, sub := range subs {
			if idx, ok := SubmissionIndex(sub, s); ok {
				total += idx
				agg.Count++
			}
		}
		if agg.Count > 0 {
			agg.Mean = total / float64(agg.Count)
		}
		out = append(out, agg)
	}
	return out
}

// QuestionAverages is the average raw score of every question of a section,
// over the submissions that answered it.
func QuestionAverages(subs []model.Submission, section model.Section) []QuestionAverage {
	out := make([]QuestionAverage, 0, len(section.Questions))
	for _, q := range section.Questions {
		avg := QuestionAverage{Key: q.Key, Text: q.Text}
		total := 0
		for _, sub := range subs {
			if v, ok := sub.Answers[section.Key][q.Key]; ok {
				total += v
				avg.Count++
			}
		}
		if avg.Count > 0 {
			avg.Average = float64(total) / float64(avg.Count)
		}
		out = append(out, avg)
	}
	return out
}

// Summarize builds the dashboard figures.
func Summarize(subs []model.Submission, cfg model.QuestionConfig) Summary {
	sum := Summary{
		Respondents: len(subs),
		Indices:     Aggregate(subs, cfg),
	}
	for _, s := range cfg.Sections {
		sum.Questions = append(sum.Questions, SectionQuestions{
			Section:   s.Key,
			Title:     s.Title,
			Questions: QuestionAverages(subs, s),
		})
	}
	return sum
}
