package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mbolis/survei-haji/model"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testSubmission(name string) model.Submission {
	return model.Submission{
		Respondent: model.Respondent{
			Name:       name,
			Occupation: "PNS",
			AgeBracket: "41-50 tahun",
			Gender:     "Perempuan",
			Education:  "SMA",
		},
		Answers: map[string]model.AnswerGroup{
			model.SectionInformasiHaji: {"q1": 5, "q2": 4},
		},
		SelfDeclaration: true,
		Improvements:    model.ImproveAreas("sdm", "sarana"),
		Signature:       "data:image/png;base64,AAAA",
		QuestionCounts:  map[string]int{model.SectionInformasiHaji: 10},
	}
}

// storeSuite runs the contract every Store implementation must satisfy.
func storeSuite(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create assigns id and timestamp", func(t *testing.T) {
		sub := testSubmission("Siti")
		if err := store.CreateSubmission(ctx, &sub); err != nil {
			t.Fatalf("Failed to create submission: %v", err)
		}
		if sub.ID == "" {
			t.Error("Expected an id to be assigned")
		}
		if sub.CreatedAt.IsZero() || sub.CreatedAt.Location() != time.UTC {
			t.Errorf("Expected UTC timestamp, got %v", sub.CreatedAt)
		}

		got, err := store.GetSubmission(ctx, sub.ID)
		if err != nil {
			t.Fatalf("Failed to get submission: %v", err)
		}
		if got.Respondent.Name != "Siti" {
			t.Errorf("Expected name Siti, got %q", got.Respondent.Name)
		}
		if got.Answers[model.SectionInformasiHaji]["q1"] != 5 {
			t.Errorf("Expected q1=5, got %v", got.Answers)
		}
		if !got.Improvements.Has("sarana") || !got.Improvements.Has("sdm") {
			t.Errorf("Expected improvements to survive, got %v", got.Improvements.Keys())
		}
		if got.QuestionCounts[model.SectionInformasiHaji] != 10 {
			t.Errorf("Expected question count snapshot 10, got %v", got.QuestionCounts)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		for _, name := range []string{"first", "second", "third"} {
			sub := testSubmission(name)
			if err := store.CreateSubmission(ctx, &sub); err != nil {
				t.Fatalf("Failed to create submission: %v", err)
			}
			time.Sleep(2 * time.Millisecond)
		}

		subs, err := store.ListSubmissions(ctx)
		if err != nil {
			t.Fatalf("Failed to list submissions: %v", err)
		}
		if len(subs) < 3 {
			t.Fatalf("Expected at least 3 submissions, got %d", len(subs))
		}
		if subs[0].Respondent.Name != "third" || subs[2].Respondent.Name != "first" {
			t.Errorf("Expected newest first, got %s, %s, %s",
				subs[0].Respondent.Name, subs[1].Respondent.Name, subs[2].Respondent.Name)
		}
	})

	t.Run("delete", func(t *testing.T) {
		sub := testSubmission("gone")
		if err := store.CreateSubmission(ctx, &sub); err != nil {
			t.Fatalf("Failed to create submission: %v", err)
		}
		if err := store.DeleteSubmission(ctx, sub.ID); err != nil {
			t.Fatalf("Failed to delete submission: %v", err)
		}
		if _, err := store.GetSubmission(ctx, sub.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteSubmission(ctx, sub.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("config versions", func(t *testing.T) {
		if _, _, err := store.ReadConfig(ctx); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Expected ErrNotFound on empty config, got %v", err)
		}

		cfg := model.DefaultQuestions()
		v1, err := store.WriteConfig(ctx, cfg, 0)
		if err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		cfg.Sections[0].Title = "Informasi"
		v2, err := store.WriteConfig(ctx, cfg, v1)
		if err != nil {
			t.Fatalf("Failed versioned write: %v", err)
		}
		if v2 != v1+1 {
			t.Errorf("Expected version %d, got %d", v1+1, v2)
		}

		if _, err := store.WriteConfig(ctx, cfg, v1); !errors.Is(err, ErrConflict) {
			t.Errorf("Expected ErrConflict on stale version, got %v", err)
		}

		got, version, err := store.ReadConfig(ctx)
		if err != nil {
			t.Fatalf("Failed to read config: %v", err)
		}
		if version != v2 {
			t.Errorf("Expected version %d, got %d", v2, version)
		}
		if got.Sections[0].Title != "Informasi" {
			t.Errorf("Expected updated title, got %q", got.Sections[0].Title)
		}
		if s, _ := got.Section(model.SectionInformasiHaji); len(s.Questions) != 10 {
			t.Errorf("Expected 10 questions, got %d", len(s.Questions))
		}

		if _, err := store.WriteConfig(ctx, cfg, 0); err != nil {
			t.Errorf("Expected unconditional write to succeed, got %v", err)
		}
	})

	t.Run("tokens are single use", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		if err := store.SaveToken(ctx, "admin", "tok", "ref", exp); err != nil {
			t.Fatalf("Failed to save token: %v", err)
		}

		got, err := store.ConsumeToken(ctx, "admin", "tok", "ref")
		if err != nil {
			t.Fatalf("Failed to consume token: %v", err)
		}
		if !got.Equal(exp) {
			t.Errorf("Expected expiration %v, got %v", exp, got)
		}

		if _, err := store.ConsumeToken(ctx, "admin", "tok", "ref"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound on reuse, got %v", err)
		}
	})
}

func TestSQLiteStore(t *testing.T) {
	storeSuite(t, openTestStore(t))
}

func TestSQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.sqlite")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	sub := testSubmission("persisted")
	if err := store.CreateSubmission(context.Background(), &sub); err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}
	store.Close()

	store, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store.Close()

	got, err := store.GetSubmission(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("Failed to get submission: %v", err)
	}
	if got.Respondent.Name != "persisted" {
		t.Errorf("Expected persisted, got %q", got.Respondent.Name)
	}
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("SURVEY_TEST_MONGO_URL")
	if uri == "" {
		t.Skip("SURVEY_TEST_MONGO_URL not set")
	}

	ctx := context.Background()
	store, err := Open(ctx, uri)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer store.Close()

	ms := store.(*mongoStore)
	if err := ms.surveys.Database().Drop(ctx); err != nil {
		t.Fatalf("Failed to reset database: %v", err)
	}
	storeSuite(t, store)
}
