package routes

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/survei-haji/app"
	"github.com/mbolis/survei-haji/database"
	"github.com/mbolis/survei-haji/export"
	"github.com/mbolis/survei-haji/httpx"
	"github.com/mbolis/survei-haji/log"
	"github.com/mbolis/survei-haji/model"
	"github.com/mbolis/survei-haji/score"
)

// dashboardConfig reads the stored configuration merged over the defaults.
// Unlike the respondent screens the dashboard refuses to fall back to the
// defaults when no configuration is stored. Any failure has already been
// answered when ok is false.
func dashboardConfig(app app.App, w http.ResponseWriter, r *http.Request) (cfg model.QuestionConfig, ok bool) {
	stored, _, err := app.ReadConfig(r.Context())
	switch {
	case errors.Is(err, database.ErrNotFound):
		httpx.LogStatusMsg(w, r, http.StatusServiceUnavailable, log.WarnLevel, "config.missing", "Konfigurasi pertanyaan belum tersedia.")
		return
	case err != nil:
		log.Errorf("db.read_config: %s", err)
		httpx.Status(w, r, http.StatusServiceUnavailable, "config.unavailable", "Konfigurasi pertanyaan tidak dapat dibaca.")
		return
	}
	return model.Merge(model.DefaultQuestions(), stored), true
}

// Dashboard answers the aggregate indices.
func Dashboard(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, ok := dashboardConfig(app, w, r)
		if !ok {
			return
		}

		subs, err := app.ListSubmissions(r.Context())
		if err != nil {
			httpx.Fail(w, r, "db.list_submissions", err)
			return
		}

		render.JSON(w, r, score.Summarize(subs, cfg))
	}
}

func DashboardExport(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, ok := dashboardConfig(app, w, r)
		if !ok {
			return
		}

		subs, err := app.ListSubmissions(r.Context())
		if err != nil {
			httpx.Fail(w, r, "db.list_submissions", err)
			return
		}

		writeCSV(w, r, subs, cfg, export.Dashboard)
	}
}

// writeCSV renders the whole file before answering, so a failure still gets
// a proper status.
func writeCSV(w http.ResponseWriter, r *http.Request, rows []model.Submission, cfg model.QuestionConfig, layout export.Layout) {
	var buf bytes.Buffer
	if err := export.Write(&buf, rows, cfg, layout); err != nil {
		httpx.Fail(w, r, "export.write", err)
		return
	}

	w.Header().Set("content-type", export.ContentType)
	w.Header().Set("content-disposition", `attachment; filename="`+layout.Filename()+`"`)
	w.Write(buf.Bytes())
}
