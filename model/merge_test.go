package model

import "testing"

func TestMergeLeafPrecedence(t *testing.T) {
	stored := QuestionConfig{
		Sections: []Section{
			{
				Key: SectionInformasiHaji,
				Questions: []Question{
					{Key: "q2", Text: "Edited q2"},
					{Key: "q11", Text: "Extra question"},
				},
			},
			{
				Key:       "layananTambahan",
				Title:     "Layanan Tambahan",
				Code:      "ILT",
				Questions: []Question{{Key: "lt1", Text: "Apakah puas?"}},
			},
		},
		Improvements: []Option{
			{Key: "sdm", Label: "SDM"},
			{Key: "lainnya", Label: "Lainnya"},
		},
	}

	merged := Merge(DefaultQuestions(), stored)

	info, ok := merged.Section(SectionInformasiHaji)
	if !ok {
		t.Fatal("Expected informasiHaji section")
	}
	if len(info.Questions) != 11 {
		t.Fatalf("Expected 11 questions after merge, got %d", len(info.Questions))
	}
	if info.Questions[0].Text != DefaultQuestions().Sections[0].Questions[0].Text {
		t.Errorf("Expected q1 to fall back to default, got %q", info.Questions[0].Text)
	}
	if info.Questions[1].Text != "Edited q2" {
		t.Errorf("Expected stored q2 to win, got %q", info.Questions[1].Text)
	}
	if info.Questions[10].Key != "q11" {
		t.Errorf("Expected stored-only key appended last, got %q", info.Questions[10].Key)
	}
	if info.Title == "" || info.MaxScale != DefaultMaxScale {
		t.Errorf("Expected section attributes to fall back to defaults, got %+v", info)
	}

	// untouched sections survive whole
	paspor, ok := merged.Section(SectionRekomendasiPaspor)
	if !ok || len(paspor.Questions) != 6 {
		t.Errorf("Expected default rekomendasiPaspor with 6 questions, got %+v", paspor)
	}

	extra, ok := merged.Section("layananTambahan")
	if !ok {
		t.Fatal("Expected stored-only section to be appended")
	}
	if extra.MaxScale != DefaultMaxScale {
		t.Errorf("Expected default max scale on stored-only section, got %d", extra.MaxScale)
	}
	if merged.Sections[len(merged.Sections)-1].Key != "layananTambahan" {
		t.Error("Expected stored-only section after default sections")
	}

	if got := merged.ImprovementLabel("sdm"); got != "SDM" {
		t.Errorf("Expected stored label to win, got %q", got)
	}
	if got := merged.ImprovementLabel("kebijakan"); got != "Kebijakan pelayanan" {
		t.Errorf("Expected default label, got %q", got)
	}
	if got := merged.ImprovementLabel("lainnya"); got != "Lainnya" {
		t.Errorf("Expected stored-only option, got %q", got)
	}
}

func TestMergeEmptyStored(t *testing.T) {
	merged := Merge(DefaultQuestions(), QuestionConfig{})
	def := DefaultQuestions()
	if len(merged.Sections) != len(def.Sections) {
		t.Fatalf("Expected %d sections, got %d", len(def.Sections), len(merged.Sections))
	}
	for i := range def.Sections {
		if len(merged.Sections[i].Questions) != len(def.Sections[i].Questions) {
			t.Errorf("Section %s: expected %d questions, got %d", def.Sections[i].Key,
				len(def.Sections[i].Questions), len(merged.Sections[i].Questions))
		}
	}

	// merging must not alias the defaults
	merged.Sections[0].Questions[0].Text = "changed"
	if DefaultQuestions().Sections[0].Questions[0].Text == "changed" {
		t.Error("Merge result aliases the defaults")
	}
}

func TestOrderedImprovements(t *testing.T) {
	cfg := QuestionConfig{Improvements: []Option{
		{Key: NoImprovementKey, Label: "Tidak ada"},
		{Key: "sdm", Label: "SDM"},
		{Key: "calo", Label: "Calo"},
	}}
	got := cfg.OrderedImprovements()
	if got[len(got)-1].Key != NoImprovementKey {
		t.Errorf("Expected %s last, got %+v", NoImprovementKey, got)
	}
	if got[0].Key != "sdm" || got[1].Key != "calo" {
		t.Errorf("Expected other options to keep their order, got %+v", got)
	}
}

func TestSectionByCode(t *testing.T) {
	cfg := DefaultQuestions()
	s, ok := cfg.SectionByCode("ikp")
	if !ok || s.Key != SectionRekomendasiPaspor {
		t.Errorf("Expected ikp to resolve to rekomendasiPaspor, got %+v", s)
	}
	if _, ok := cfg.SectionByCode("nope"); ok {
		t.Error("Expected unknown code to fail")
	}
}
