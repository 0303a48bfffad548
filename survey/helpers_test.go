package survey

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/mbolis/survei-haji/model"
)

func signatureDataURL(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		img.Set(x, 10, color.Black)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode signature: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func fullAnswers(cfg model.QuestionConfig, value int) map[string]model.AnswerGroup {
	answers := map[string]model.AnswerGroup{}
	for _, s := range cfg.Sections {
		g := model.AnswerGroup{}
		for _, q := range s.Questions {
			g[q.Key] = value
		}
		answers[s.Key] = g
	}
	return answers
}

func validForm(t *testing.T, cfg model.QuestionConfig) Form {
	t.Helper()
	return Form{
		Respondent: model.Respondent{
			Name:       "Ali Rahman",
			Phone:      "081234567890",
			Occupation: "PNS",
			AgeBracket: "41-50 tahun",
			Gender:     "Laki-laki",
			Education:  "Strata 1 (S1)",
		},
		Answers:         fullAnswers(cfg, 4),
		Suggestions:     map[string]string{model.SectionInformasiHaji: `He said "hello"`},
		SelfDeclaration: true,
		Improvements:    model.ImproveAreas("sdm"),
		Signature:       signatureDataURL(t),
	}
}

type countingStore struct {
	calls int
	err   error
	saved []model.Submission
}

func (s *countingStore) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	sub.ID = "generated"
	sub.CreatedAt = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	s.saved = append(s.saved, *sub)
	return nil
}
