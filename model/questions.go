package model

import "strings"

// QuestionConfig is the singleton document holding the text of every survey
// question and improvement option. Slice order is display order.
type QuestionConfig struct {
	Sections     []Section `json:"sections"`
	Improvements []Option  `json:"improvements"`
}

// Section is one group of Likert-scored questions (an AnswerGroup on the
// submission side).
type Section struct {
	Key             string     `json:"key"`
	Title           string     `json:"title"`
	Code            string     `json:"code"`
	MaxScale        int        `json:"maxScale"`
	Optional        bool       `json:"optional,omitempty"`
	SuggestionLabel string     `json:"suggestionLabel,omitempty"`
	Questions       []Question `json:"questions"`
}

type Question struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Section returns the section with the given key.
func (c QuestionConfig) Section(key string) (Section, bool) {
	for _, s := range c.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// SectionByCode looks a section up by its index code, case-insensitively.
func (c QuestionConfig) SectionByCode(code string) (Section, bool) {
	for _, s := range c.Sections {
		if strings.EqualFold(s.Code, code) {
			return s, true
		}
	}
	return Section{}, false
}

// ImprovementLabel returns the label of an improvement option, or the key
// itself when the option is not configured.
func (c QuestionConfig) ImprovementLabel(key string) string {
	for _, o := range c.Improvements {
		if o.Key == key {
			return o.Label
		}
	}
	return key
}

// OrderedImprovements returns the options with the reserved "nothing to
// improve" option moved last.
func (c QuestionConfig) OrderedImprovements() []Option {
	out := make([]Option, 0, len(c.Improvements))
	var none *Option
	for i, o := range c.Improvements {
		if o.Key == NoImprovementKey {
			none = &c.Improvements[i]
			continue
		}
		out = append(out, o)
	}
	if none != nil {
		out = append(out, *none)
	}
	return out
}

func (s Section) Question(key string) (Question, bool) {
	for _, q := range s.Questions {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}

// Label returns the question text, or the key itself when unknown.
func (s Section) Label(key string) string {
	if q, ok := s.Question(key); ok {
		return q.Text
	}
	return key
}
