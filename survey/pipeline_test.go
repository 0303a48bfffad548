package survey

import (
	"context"
	"errors"
	"testing"

	"github.com/mbolis/survei-haji/model"
)

func TestSubmitRejectsWithoutStoreCalls(t *testing.T) {
	cfg := model.DefaultQuestions()
	store := &countingStore{}
	p := NewPipeline(store, NewValidator())

	f := validForm(t, cfg)
	f.SelfDeclaration = false

	_, err := p.Submit(context.Background(), cfg, f)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected ValidationErrors, got %v", err)
	}
	if !verrs.Has("selfDeclaration") {
		t.Errorf("Expected selfDeclaration error, got %v", verrs)
	}
	if store.calls != 0 {
		t.Errorf("Expected zero store calls, got %d", store.calls)
	}
}

func TestSubmitPersists(t *testing.T) {
	cfg := model.DefaultQuestions()
	store := &countingStore{}
	p := NewPipeline(store, NewValidator())

	f := validForm(t, cfg)
	delete(f.Answers, model.SectionMobilisasi) // optional section skipped
	f.Answers[model.SectionInformasiHaji]["bogus"] = 3

	sub, err := p.Submit(context.Background(), cfg, f)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if store.calls != 1 {
		t.Errorf("Expected one store call, got %d", store.calls)
	}
	if sub.ID != "generated" || sub.CreatedAt.IsZero() {
		t.Errorf("Expected store-assigned id and timestamp, got %q %v", sub.ID, sub.CreatedAt)
	}
	if _, ok := sub.Answers[model.SectionInformasiHaji]["bogus"]; ok {
		t.Error("Expected unconfigured question keys to be dropped")
	}
	if sub.HasSection(model.SectionMobilisasi) {
		t.Error("Expected skipped optional section to stay absent")
	}
	if sub.QuestionCounts[model.SectionInformasiHaji] != 10 {
		t.Errorf("Expected question count snapshot 10, got %d", sub.QuestionCounts[model.SectionInformasiHaji])
	}
	if _, ok := sub.QuestionCounts[model.SectionMobilisasi]; ok {
		t.Error("Expected no snapshot for an unanswered section")
	}
	if sub.Suggestions[model.SectionInformasiHaji] != `He said "hello"` {
		t.Errorf("Expected suggestion to be kept, got %v", sub.Suggestions)
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	cfg := model.DefaultQuestions()
	boom := errors.New("permission denied")
	p := NewPipeline(&countingStore{err: boom}, NewValidator())

	_, err := p.Submit(context.Background(), cfg, validForm(t, cfg))
	if !errors.Is(err, boom) {
		t.Errorf("Expected store error to be returned, got %v", err)
	}
}
