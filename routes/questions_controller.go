package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/survei-haji/app"
	"github.com/mbolis/survei-haji/database"
	"github.com/mbolis/survei-haji/httpx"
	"github.com/mbolis/survei-haji/log"
	"github.com/mbolis/survei-haji/model"
)

// QuestionsDocument is the configuration together with its stored version.
type QuestionsDocument struct {
	Version int `json:"version"`
	model.QuestionConfig
}

// currentConfig reads the stored configuration merged over the defaults.
// A missing document yields the defaults.
func currentConfig(ctx context.Context, store database.Store) (model.QuestionConfig, error) {
	stored, _, err := store.ReadConfig(ctx)
	if errors.Is(err, database.ErrNotFound) {
		return model.DefaultQuestions(), nil
	}
	if err != nil {
		return model.QuestionConfig{}, err
	}
	return model.Merge(model.DefaultQuestions(), stored), nil
}

func GetQuestions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := currentConfig(r.Context(), app)
		if err != nil {
			httpx.Fail(w, r, "db.read_config", err)
			return
		}
		render.JSON(w, r, cfg)
	}
}

// AdminGetQuestions returns the configuration, writing the defaults first
// when none is stored yet.
func AdminGetQuestions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, version, err := app.ReadConfig(r.Context())
		if errors.Is(err, database.ErrNotFound) {
			log.Info("questions.init: storing default configuration")
			stored = model.DefaultQuestions()
			version, err = app.WriteConfig(r.Context(), stored, 0)
		}
		if err != nil {
			httpx.Fail(w, r, "db.read_config", err)
			return
		}

		render.JSON(w, r, QuestionsDocument{
			Version:        version,
			QuestionConfig: model.Merge(model.DefaultQuestions(), stored),
		})
	}
}

// AdminPutQuestions overwrites the whole configuration. A non-zero version
// must match the stored one.
func AdminPutQuestions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc QuestionsDocument
		if err := render.DecodeJSON(r.Body, &doc); err != nil {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "questions.decode", "invalid body: %s", err)
			return
		}
		if len(doc.Sections) == 0 {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "questions.sections", "sections are required")
			return
		}

		version, err := app.WriteConfig(r.Context(), doc.QuestionConfig, doc.Version)
		if err != nil {
			httpx.Fail(w, r, "db.write_config", err)
			return
		}
		log.WithFields(log.Fields{"version": version}).Info("questions.updated")

		render.JSON(w, r, QuestionsDocument{Version: version, QuestionConfig: doc.QuestionConfig})
	}
}
