package survey

import "github.com/mbolis/survei-haji/model"

type StepKind string

const (
	StepRespondent StepKind = "respondent"
	StepSection    StepKind = "section"
	StepClosing    StepKind = "closing"
)

type Step struct {
	Number  int      `json:"number"`
	Kind    StepKind `json:"kind"`
	Section string   `json:"section,omitempty"`
	Title   string   `json:"title"`
}

// Steps lays the wizard out: respondent data first, one step per rating
// section, then the closing step.
func Steps(cfg model.QuestionConfig) []Step {
	steps := []Step{{Kind: StepRespondent, Title: "Data Responden"}}
	for _, s := range cfg.Sections {
		steps = append(steps, Step{Kind: StepSection, Section: s.Key, Title: s.Title})
	}
	steps = append(steps, Step{Kind: StepClosing, Title: "Pernyataan dan Perbaikan"})
	for i := range steps {
		steps[i].Number = i + 1
	}
	return steps
}

// Wizard is the navigation state of one respondent's form. Step is 1-indexed.
type Wizard struct {
	Step  int `json:"step"`
	Total int `json:"total"`

	steps []Step
	cfg   model.QuestionConfig
	val   *Validator
}

func NewWizard(cfg model.QuestionConfig, val *Validator) *Wizard {
	steps := Steps(cfg)
	return &Wizard{Step: 1, Total: len(steps), steps: steps, cfg: cfg, val: val}
}

// Current returns the step being displayed.
func (w *Wizard) Current() Step {
	return w.steps[w.Step-1]
}

// Next validates the current step's fields only and advances when they pass.
// On the last step it only validates.
func (w *Wizard) Next(f Form) ValidationErrors {
	if errs := w.val.Step(w.cfg, f, w.Current()); len(errs) > 0 {
		return errs
	}
	if w.Step < w.Total {
		w.Step++
	}
	return nil
}

// Prev moves back one step without validating.
func (w *Wizard) Prev() {
	if w.Step > 1 {
		w.Step--
	}
}

// Goto jumps to a step, clamped to [1, Total], without validating.
func (w *Wizard) Goto(step int) {
	switch {
	case step < 1:
		w.Step = 1
	case step > w.Total:
		w.Step = w.Total
	default:
		w.Step = step
	}
}

func (w *Wizard) Last() bool {
	return w.Step == w.Total
}
