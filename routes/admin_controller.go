package routes

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/mbolis/survei-haji/app"
	"github.com/mbolis/survei-haji/browse"
	"github.com/mbolis/survei-haji/export"
	"github.com/mbolis/survei-haji/httpx"
	"github.com/mbolis/survei-haji/log"
	"github.com/mbolis/survei-haji/model"
	"github.com/mbolis/survei-haji/survey"
)

// loadBrowser fetches every submission and the merged configuration. Any
// failure has already been answered when ok is false.
func loadBrowser(app app.App, w http.ResponseWriter, r *http.Request) (b *browse.Browser, cfg model.QuestionConfig, ok bool) {
	cfg, err := currentConfig(r.Context(), app)
	if err != nil {
		httpx.Fail(w, r, "db.read_config", err)
		return
	}

	subs, err := app.ListSubmissions(r.Context())
	if err != nil {
		httpx.Fail(w, r, "db.list_submissions", err)
		return
	}
	return browse.New(subs, cfg), cfg, true
}

func ListEntries(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, _, ok := loadBrowser(app, w, r)
		if !ok {
			return
		}

		view := browse.ParseView(r.URL.Query(), app.PageSize)
		render.JSON(w, r, b.Page(view))
	}
}

func GetEntry(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		cfg, err := currentConfig(r.Context(), app)
		if err != nil {
			httpx.Fail(w, r, "db.read_config", err)
			return
		}

		sub, err := app.GetSubmission(r.Context(), id)
		if err != nil {
			httpx.Fail(w, r, "db.get_submission", err)
			return
		}

		render.JSON(w, r, browse.NewDetail(sub, cfg))
	}
}

// GetSignature serves the stored signature as an image. Query parameters:
// format (png or webp) and w, the maximum width in pixels.
func GetSignature(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := r.URL.Query().Get("format")
		if format != "" && format != "png" && format != "webp" {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "signature.format", "unsupported format %q", format)
			return
		}
		var width int
		if ws := r.URL.Query().Get("w"); ws != "" {
			n, err := strconv.Atoi(ws)
			if err != nil || n < 1 {
				httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "signature.width", "invalid width %q", ws)
				return
			}
			width = n
		}

		sub, err := app.GetSubmission(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.Fail(w, r, "db.get_submission", err)
			return
		}

		img, err := survey.DecodeSignature(sub.Signature)
		if err != nil {
			httpx.LogInternalError(w, r, "signature.decode", err)
			return
		}

		var buf bytes.Buffer
		contentType, err := survey.EncodeSignature(&buf, img, format, width)
		if err != nil {
			httpx.LogInternalError(w, r, "signature.encode", err)
			return
		}

		w.Header().Set("content-type", contentType)
		w.Header().Set("cache-control", "private, max-age=3600")
		w.Write(buf.Bytes())
	}
}

// DeleteEntry removes a submission for good.
func DeleteEntry(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := app.DeleteSubmission(r.Context(), id)
		if err != nil {
			httpx.Fail(w, r, "db.delete_submission", err)
			return
		}
		log.WithFields(log.Fields{"id": id}).Info("survey.deleted")

		w.WriteHeader(http.StatusNoContent)
	}
}

// AdminExport writes the filtered and sorted working set as CSV. It takes the
// same q, sort and dir parameters as ListEntries; pagination is ignored.
func AdminExport(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, cfg, ok := loadBrowser(app, w, r)
		if !ok {
			return
		}

		entries := b.Rows(browse.ParseView(r.URL.Query(), app.PageSize))
		rows := make([]model.Submission, len(entries))
		for i, e := range entries {
			rows[i] = e.Submission
		}

		writeCSV(w, r, rows, cfg, export.Admin)
	}
}
