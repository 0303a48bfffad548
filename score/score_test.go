package score

import (
	"fmt"
	"math"
	"testing"

	"github.com/mbolis/survei-haji/model"
)

func group(n, value int) model.AnswerGroup {
	g := model.AnswerGroup{}
	for i := 1; i <= n; i++ {
		g[fmt.Sprintf("q%d", i)] = value
	}
	return g
}

func TestIndexBounds(t *testing.T) {
	for _, max := range []int{5, 6} {
		for _, n := range []int{1, 5, 10} {
			t.Run(fmt.Sprintf("n=%d,max=%d", n, max), func(t *testing.T) {
				for v := 1; v <= max; v++ {
					idx := Index(group(n, v), n, max)
					if idx < 0 || idx > 100 {
						t.Errorf("Index out of bounds: %f", idx)
					}
					if (idx == 100) != (v == max) {
						t.Errorf("Expected 100 iff all answers equal max, value %d gave %f", v, idx)
					}
				}

				if got := Index(group(n, max), n, max); got != 100 {
					t.Errorf("Expected all-maximum to give 100, got %f", got)
				}
				want := 100 / float64(max)
				if got := Index(group(n, 1), n, max); math.Abs(got-want) > 1e-9 {
					t.Errorf("Expected all-minimum to give %f, got %f", want, got)
				}
			})
		}
	}
}

func TestIndexZeroQuestions(t *testing.T) {
	got := Index(model.AnswerGroup{"x": 4}, 0, 5)
	if got != 0 || math.IsNaN(got) {
		t.Errorf("Expected exactly 0, got %f", got)
	}
	if got := Index(nil, 0, 0); got != 0 {
		t.Errorf("Expected exactly 0, got %f", got)
	}
}

func TestIndexFormula(t *testing.T) {
	g := model.AnswerGroup{"q1": 4, "q2": 5, "q3": 3}
	// 12 / 15 * 100
	if got := Index(g, 3, 5); math.Abs(got-80) > 1e-9 {
		t.Errorf("Expected 80, got %f", got)
	}
	if Round2(66.666666) != 66.67 {
		t.Errorf("Unexpected rounding %f", Round2(66.666666))
	}
}

func TestSubmissionIndexSnapshot(t *testing.T) {
	section := model.Section{
		Key:       "s",
		MaxScale:  5,
		Questions: []model.Question{{Key: "q1"}, {Key: "q2"}, {Key: "q3"}, {Key: "q4"}},
	}

	legacy := model.Submission{Answers: map[string]model.AnswerGroup{"s": {"q1": 5, "q2": 5}}}
	idx, ok := SubmissionIndex(legacy, section)
	if !ok || idx != 50 {
		t.Errorf("Expected legacy submission to use current count (50), got %f %v", idx, ok)
	}

	snap := legacy
	snap.QuestionCounts = map[string]int{"s": 2}
	idx, ok = SubmissionIndex(snap, section)
	if !ok || idx != 100 {
		t.Errorf("Expected snapshot count to be used (100), got %f %v", idx, ok)
	}

	if _, ok := SubmissionIndex(model.Submission{}, section); ok {
		t.Error("Expected missing section to report !ok")
	}
}

func TestIndices(t *testing.T) {
	cfg := model.DefaultQuestions()
	sub := model.Submission{Answers: map[string]model.AnswerGroup{
		model.SectionInformasiHaji:     group(10, 5),
		model.SectionRekomendasiPaspor: {"rp1": 3, "rp2": 3, "rp3": 3, "rp4": 3, "rp5": 3, "rp6": 3},
	}}
	got := Indices(sub, cfg)
	if len(got) != 2 {
		t.Fatalf("Expected 2 indices, got %v", got)
	}
	if got[model.SectionInformasiHaji] != 100 {
		t.Errorf("Expected IIH 100, got %f", got[model.SectionInformasiHaji])
	}
	if got[model.SectionRekomendasiPaspor] != 60 {
		t.Errorf("Expected IKP 60, got %f", got[model.SectionRekomendasiPaspor])
	}
	if _, ok := got[model.SectionBiovisa]; ok {
		t.Error("Expected absent optional section to be omitted")
	}
}
