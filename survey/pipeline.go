package survey

import (
	"context"

	"github.com/mbolis/survei-haji/model"
)

// Creator persists a new submission, assigning its ID and creation time.
type Creator interface {
	CreateSubmission(ctx context.Context, sub *model.Submission) error
}

// Pipeline validates a complete form and appends it to the store.
type Pipeline struct {
	store Creator
	val   *Validator
}

func NewPipeline(store Creator, val *Validator) *Pipeline {
	return &Pipeline{store: store, val: val}
}

// Submit validates every step against cfg. An invalid form returns
// ValidationErrors without touching the store; a store failure is returned
// as is.
func (p *Pipeline) Submit(ctx context.Context, cfg model.QuestionConfig, f Form) (model.Submission, error) {
	if err := p.val.Form(cfg, f).orNil(); err != nil {
		return model.Submission{}, err
	}

	sub := f.Submission(cfg)
	if err := p.store.CreateSubmission(ctx, &sub); err != nil {
		return model.Submission{}, err
	}
	return sub, nil
}
