// Package score derives the 0-100 satisfaction indices from Likert answers.
package score

import (
	"math"

	"github.com/mbolis/survei-haji/model"
)

// Index normalizes one answer group to [0, 100]:
//
//	100 * sum(values) / (questionCount * maxScale)
//
// A section without questions (or without a scale) scores 0, never NaN.
func Index(group model.AnswerGroup, questionCount, maxScale int) float64 {
	if questionCount <= 0 || maxScale <= 0 {
		return 0
	}
	return 100 * float64(group.Sum()) / float64(questionCount*maxScale)
}

// QuestionCount is the count used as denominator for a submission's section:
// the snapshot taken at write time when present, the current configuration's
// count otherwise.
func QuestionCount(sub model.Submission, section model.Section) int {
	if n, ok := sub.QuestionCounts[section.Key]; ok && n > 0 {
		return n
	}
	return len(section.Questions)
}

// SubmissionIndex computes a submission's index for one section. ok is false
// when the submission holds no answers for that section.
func SubmissionIndex(sub model.Submission, section model.Section) (index float64, ok bool) {
	if !sub.HasSection(section.Key) {
		return 0, false
	}
	return Index(sub.Answers[section.Key], QuestionCount(sub, section), section.MaxScale), true
}

// Indices computes every configured section index of a submission, keyed by
// section key. Sections the submission does not contain are omitted.
func Indices(sub model.Submission, cfg model.QuestionConfig) map[string]float64 {
	out := make(map[string]float64, len(cfg.Sections))
	for _, s := range cfg.Sections {
		if idx, ok := SubmissionIndex(sub, s); ok {
			out[s.Key] = idx
		}
	}
	return out
}

// Round2 rounds to two decimals, for presentation only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
